package eventemitter

import "sync"

// EventEmitter delivers every emitted message to all of its subscribers.
// Each subscriber consumes its own queue on a dedicated goroutine, so a slow
// callback only delays the messages addressed to it.
type EventEmitter[T any] struct {
	mu          sync.RWMutex
	subscribers []*Subscriber[T]
}

func (eventEmitter *EventEmitter[T]) Emit(message T) {
	eventEmitter.mu.RLock()
	defer eventEmitter.mu.RUnlock()
	for _, subscriber := range eventEmitter.subscribers {
		subscriber.enqueue(message)
	}
}

func (eventEmitter *EventEmitter[T]) Subscribe(callback func(T)) *Subscriber[T] {
	if callback == nil {
		panic("Callback is nil")
	}
	subscriber := newSubscriber(eventEmitter, callback)
	eventEmitter.mu.Lock()
	eventEmitter.subscribers = append(eventEmitter.subscribers, subscriber)
	eventEmitter.mu.Unlock()
	return subscriber
}

// SubscribersCount returns how many subscribers are currently registered.
func (eventEmitter *EventEmitter[T]) SubscribersCount() int {
	eventEmitter.mu.RLock()
	defer eventEmitter.mu.RUnlock()
	return len(eventEmitter.subscribers)
}

type Subscriber[T any] struct {
	emitter    *EventEmitter[T]
	inputQueue chan T
	callback   func(T)
	once       sync.Once
}

func newSubscriber[T any](emitter *EventEmitter[T], callback func(T)) *Subscriber[T] {
	instance := &Subscriber[T]{
		emitter:    emitter,
		inputQueue: make(chan T, 1),
		callback:   callback,
	}
	go func() {
		for message := range instance.inputQueue {
			instance.callback(message)
		}
	}()
	return instance
}

func (subscriber *Subscriber[T]) enqueue(message T) {
	subscriber.inputQueue <- message
}

// Unsubscribe detaches the subscriber. Messages already queued are still
// delivered.
func (subscriber *Subscriber[T]) Unsubscribe() {
	subscriber.once.Do(func() {
		emitter := subscriber.emitter
		emitter.mu.Lock()
		for index, candidate := range emitter.subscribers {
			if candidate == subscriber {
				emitter.subscribers = append(emitter.subscribers[:index], emitter.subscribers[index+1:]...)
				break
			}
		}
		close(subscriber.inputQueue)
		emitter.mu.Unlock()
	})
}
