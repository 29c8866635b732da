// Package storage prepares the folders the launcher writes to.
package storage

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

type StorageEngine struct {
	folders []string
}

func NewStorageEngine(folders ...string) (instance *StorageEngine) {
	instance = &StorageEngine{
		folders: folders,
	}
	return
}

func (storageEngine *StorageEngine) Initialize(waitGroup *sync.WaitGroup) {
	for _, folder := range storageEngine.folders {
		if _, err := os.Stat(folder); err != nil {
			logrus.Debugf("Creating %s", folder)
			if err = os.MkdirAll(folder, 0755); err != nil {
				panic(err)
			}
		}
	}
	waitGroup.Done()
}
