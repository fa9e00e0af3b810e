package slotlock

import (
	"context"
	"sync"
)

// KeyedMutex набор взаимоисключающих блокировок по строковому ключу.
// Блокировки по разным ключам не мешают друг другу, по одному ключу
// выполняются строго последовательно. Записи о ключах живут только пока
// кто-то держит или ждет блокировку (refcount), поэтому набор не растет
// бесконечно.
type KeyedMutex struct {
	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

// New создает новый KeyedMutex
func New() *KeyedMutex {
	return &KeyedMutex{
		entries: make(map[string]*entry),
	}
}

// Lock захватывает блокировку по ключу
// Блокируется, пока ключ занят другим вызывающим
func (k *KeyedMutex) Lock(key string) {
	k.mu.Lock()
	e, ok := k.entries[key]
	if !ok {
		e = &entry{}
		k.entries[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()
}

// Unlock освобождает блокировку по ключу
// Когда последний претендент уходит, запись о ключе удаляется
func (k *KeyedMutex) Unlock(key string) {
	k.mu.Lock()
	e, ok := k.entries[key]
	if !ok {
		k.mu.Unlock()
		panic("slotlock: unlock of unlocked key " + key)
	}
	e.refs--
	if e.refs == 0 {
		delete(k.entries, key)
	}
	k.mu.Unlock()

	e.mu.Unlock()
}

// Do выполняет fn под блокировкой по ключу
// Освобождение гарантировано через defer на любом пути выхода,
// включая ошибку fn и панику
func (k *KeyedMutex) Do(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	k.Lock(key)
	defer k.Unlock(key)

	return fn(ctx)
}

// Len возвращает количество ключей, по которым сейчас есть претенденты
func (k *KeyedMutex) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.entries)
}
