// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gloss

import "slices"

// Group is a labelled group of items of one gloss, such as the members of a
// collocation. Groups reference items by position; use Gloss.GroupItems to
// resolve them.
type Group struct {
	Label string

	items []int
}

// Items returns the positions of the group's items.
func (g *Group) Items() []int {
	return slices.Clone(g.items)
}

// Len returns the number of items in the group.
func (g *Group) Len() int {
	return len(g.items)
}
