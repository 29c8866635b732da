package engine_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"tusk.dev/launcher/internal/engine"
)

type MockHandler struct {
	IsStarted bool
}

func (mockHandler *MockHandler) NotifyStarted() {
	mockHandler.IsStarted = true
}

func TestInitializeNoEngines(t *testing.T) {
	engines := make([]engine.ApplicationEngine, 0)
	handler := MockHandler{}
	controller := engine.NewController(engines, &handler)
	assert.NoError(t, controller.Initialize())
	assert.True(t, handler.IsStarted, "The mock GUI not notifies the start")
}

func TestInitialize(t *testing.T) {
	const enginesCount = 5
	engines := make([]engine.ApplicationEngine, enginesCount)

	for engineIndex := uint(0); engineIndex < enginesCount; engineIndex++ {
		engines[engineIndex] = &MockEngine{Index: engineIndex}
	}

	handler := MockHandler{}

	controller := engine.NewController(engines, &handler)
	assert.NoError(t, controller.Initialize())

	for engineIndex := 0; engineIndex < enginesCount; engineIndex++ {
		assert.True(t, engines[engineIndex].(*MockEngine).Started, fmt.Sprintf("The mock engine %d not started", engineIndex))
	}
	assert.True(t, handler.IsStarted, "The mock GUI not notifies the start")
}

func TestInitializePanickingEngine(t *testing.T) {
	engines := []engine.ApplicationEngine{
		&MockEngine{Index: 0},
		&MockEngine{Index: 1, Panic: true},
	}
	handler := MockHandler{}
	controller := engine.NewController(engines, &handler)
	err := controller.Initialize()
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "cannot open database")
	}
	assert.True(t, engines[0].(*MockEngine).Started)
	assert.False(t, handler.IsStarted)
}

func TestInitializeNilEngine(t *testing.T) {
	assert.Panics(t, func() {
		engine.NewController([]engine.ApplicationEngine{nil}, &MockHandler{}).Initialize()
	})
}
