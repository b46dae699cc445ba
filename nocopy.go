// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

// noCopy marks a struct as non-copyable after first use, following the
// standard library convention (see sync.WaitGroup). `go vet`'s
// copylocks check flags any by-value copy of a struct embedding noCopy.
//
// View containers forbid copying (§4.7, §9 "View vs. owning"): copying
// would clone indices while aliasing the same externally-owned storage,
// producing an immediate data race on the next push from either copy.
// Move is allowed and is expressed as an explicit Move method rather
// than copy-then-clear, since Go has no move constructors.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
