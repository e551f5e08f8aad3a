/*
Copyright 2012 Google Inc.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

     http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package idempotency provides a duplicate function call suppression
// mechanism, derived from groupcache's singleflight package.
// Successful results are remembered until the key is forgotten;
// failures are not, so a later call for the same key runs again.
package idempotency

import "sync"

// call is an in-flight or completed Once call
type call[V any] struct {
	wg  sync.WaitGroup
	val V
	err error
}

// Group is a namespace of units of work keyed by K.
// The zero value is ready to use.
type Group[K comparable, V any] struct {
	mu sync.Mutex     // protects m
	m  map[K]*call[V] // lazily initialized
	n  int            // number of executions of fn
}

// Once executes and returns the results of fn, making sure that
// only one execution for a given key happens until the key is
// forgotten. A duplicate caller waits for the original to complete
// and receives the same results. The shared result reports whether
// the results came from another caller's execution.
func (g *Group[K, V]) Once(key K, fn func() (V, error)) (v V, err error, shared bool) {
	g.mu.Lock()
	if g.m == nil {
		g.m = make(map[K]*call[V])
	}
	if c, ok := g.m[key]; ok {
		g.mu.Unlock()
		c.wg.Wait()
		return c.val, c.err, true
	}
	c := new(call[V])
	c.wg.Add(1)
	g.m[key] = c
	g.n++
	g.mu.Unlock()

	c.val, c.err = fn()
	if c.err != nil {
		g.mu.Lock()
		delete(g.m, key)
		g.mu.Unlock()
	}
	c.wg.Done()

	return c.val, c.err, false
}

// Forget forgets a key, allowing the next call for the key to execute
// the function.
func (g *Group[K, V]) Forget(key K) {
	g.mu.Lock()
	delete(g.m, key)
	g.mu.Unlock()
}

// Executions returns the number of times Once ran its function.
func (g *Group[K, V]) Executions() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.n
}
