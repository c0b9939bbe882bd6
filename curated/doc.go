// This file is part of Gophstation.
//
// Gophstation is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gophstation is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gophstation.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is the error type used throughout the project. Curated
// errors keep the format pattern they were created with, meaning errors can
// be tested for with the Is() and Has() functions without resorting to
// sentinel error values.
//
// Errors are created with the Errorf() function, which works just like
// fmt.Errorf():
//
//	err := curated.Errorf("vram: block: %v", err)
//
// Patterns used in more than one place should be stored as a const string
// and referred to by name, both at creation and when testing.
package curated
