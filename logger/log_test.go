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

package logger_test

import (
	"strings"
	"testing"

	"github.com/gophstation/gophstation/logger"
	"github.com/gophstation/gophstation/test"
)

// test central logger and the use of the Tail() function
func TestCentralLogger(t *testing.T) {
	logger.Clear()
	w := &strings.Builder{}

	logger.Write(w)
	test.Equate(t, w.String(), "")

	logger.Log(logger.Allow, "test", "this is a test")
	logger.Write(w)
	test.Equate(t, w.String(), "test: this is a test\n")

	// clear the Builder buffer before continuing, makes comparisons easier
	// to manage
	w.Reset()

	logger.Log(logger.Allow, "test2", "this is another test")
	logger.Write(w)
	test.Equate(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	logger.Tail(w, 100)
	test.Equate(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	w.Reset()
	logger.Tail(w, 1)
	test.Equate(t, w.String(), "test2: this is another test\n")

	// and no entries
	w.Reset()
	logger.Tail(w, 0)
	test.Equate(t, w.String(), "")
}

// repeated entries are folded into one line with a repeat count
func TestRepeatFolding(t *testing.T) {
	logger.Clear()
	w := &strings.Builder{}

	logger.Log(logger.Allow, "tag", "detail")
	logger.Log(logger.Allow, "tag", "detail")
	logger.Log(logger.Allow, "tag", "detail")
	logger.Write(w)
	test.Equate(t, w.String(), "tag: detail (repeat x3)\n")
}

type prohibitLogging struct {
	allow bool
}

func (p prohibitLogging) AllowLogging() bool {
	return p.allow
}

func TestPermissions(t *testing.T) {
	w := &strings.Builder{}

	var p prohibitLogging

	logger.Clear()
	logger.Log(p, "tag", "detail")
	logger.Write(w)
	test.Equate(t, w.String(), "")

	p.allow = true
	logger.Clear()
	w.Reset()
	logger.Log(p, "tag", "detail")
	logger.Write(w)
	test.Equate(t, w.String(), "tag: detail\n")
}
