package engine

import (
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"tusk.dev/launcher/internal/gui"
)

type Controller struct {
	engines                        []ApplicationEngine
	guiHandler                     gui.Handler
	coreThreadsInitializationGroup sync.WaitGroup
}

func NewController(engines []ApplicationEngine, guiHandler gui.Handler) (controller *Controller) {
	return &Controller{
		engines:    engines,
		guiHandler: guiHandler,
	}
}

// Initialize starts every engine concurrently and notifies the GUI once all
// of them are ready. A panicking engine is reported as an error and the GUI
// is not notified.
func (controller *Controller) Initialize() error {
	failures := make([]error, len(controller.engines))
	for engineIndex, engine := range controller.engines {
		if engine == nil {
			panic(fmt.Sprintf("Engine %d is nil", engineIndex))
		}
		controller.coreThreadsInitializationGroup.Add(1)
		go func(engineIndex int, engine ApplicationEngine) {
			defer func() {
				if r := recover(); r != nil {
					failures[engineIndex] = fmt.Errorf("engine %T: %v", engine, r)
					controller.coreThreadsInitializationGroup.Done()
				}
			}()
			engine.Initialize(&controller.coreThreadsInitializationGroup)
		}(engineIndex, engine)
	}

	controller.coreThreadsInitializationGroup.Wait()
	if err := errors.Join(failures...); err != nil {
		logrus.Errorf("%+v", err)
		return err
	}
	controller.guiHandler.NotifyStarted()
	return nil
}
