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

package gwnxml

// resolve sets the synset ID of tags that have a sense key of a synset in
// the collection.
func (r *Reader) resolve() {
	for s := range r.c.All() {
		for _, g := range s.Glosses() {
			for _, t := range g.Tags() {
				if !t.SID.IsZero() || t.SenseKey == "" {
					continue
				}
				if target, ok := r.c.BySK(t.SenseKey); ok {
					t.SID = target.ID()
				}
			}
		}
	}
}
