//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package commander

import (
	"errors"
	"fmt"
	"os"

	"github.com/steelseries/golisp"

	ted "github.com/timburks/ted/types"
)

type primitive = func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error)

// Scripts drive the commander with the same events the terminal produces.
// The primitives are bound to the commander that last evaluated a script.
func (c *Commander) bindPrimitives() {
	golisp.MakePrimitiveFunction("type", "1", c.typeImpl)
	golisp.MakePrimitiveFunction("enter", "0", c.keyImpl(ted.KeyEnter))
	golisp.MakePrimitiveFunction("backspace", "0|1", c.repeatedKeyImpl(ted.KeyBackspace2))
	golisp.MakePrimitiveFunction("undo", "0|1", c.repeatedKeyImpl(c.undoKey))
	golisp.MakePrimitiveFunction("up", "0|1", c.repeatedKeyImpl(ted.KeyArrowUp))
	golisp.MakePrimitiveFunction("down", "0|1", c.repeatedKeyImpl(ted.KeyArrowDown))
	golisp.MakePrimitiveFunction("left", "0|1", c.repeatedKeyImpl(ted.KeyArrowLeft))
	golisp.MakePrimitiveFunction("right", "0|1", c.repeatedKeyImpl(ted.KeyArrowRight))
	golisp.MakePrimitiveFunction("row", "0", c.rowImpl)
	golisp.MakePrimitiveFunction("col", "0", c.colImpl)
	golisp.MakePrimitiveFunction("line-count", "0", c.lineCountImpl)
	golisp.MakePrimitiveFunction("line", "1", c.lineImpl)
	golisp.MakePrimitiveFunction("text", "0", c.textImpl)
}

func intArg(args *golisp.Data, defaultValue int) (int, error) {
	if golisp.NilP(args) {
		return defaultValue, nil
	}
	val := golisp.Car(args)
	switch {
	case golisp.IntegerP(val):
		return int(golisp.IntegerValue(val)), nil
	case golisp.FloatP(val):
		return int(golisp.FloatValue(val)), nil
	}
	return 0, errors.New("expected a number")
}

func (c *Commander) typeImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("type requires a string argument")
	}
	for _, ch := range golisp.StringValue(val) {
		if ch == '\n' {
			c.ProcessEvent(&ted.Event{Type: ted.EventKey, Key: ted.KeyEnter})
		} else {
			c.ProcessEvent(&ted.Event{Type: ted.EventKey, Ch: ch})
		}
	}
	return golisp.BooleanWithValue(true), nil
}

func (c *Commander) keyImpl(key ted.Key) primitive {
	return func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		c.ProcessEvent(&ted.Event{Type: ted.EventKey, Key: key})
		return golisp.BooleanWithValue(true), nil
	}
}

func (c *Commander) repeatedKeyImpl(key ted.Key) primitive {
	return func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		n, err := intArg(args, 1)
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			c.ProcessEvent(&ted.Event{Type: ted.EventKey, Key: key})
		}
		return golisp.BooleanWithValue(true), nil
	}
}

func (c *Commander) rowImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.IntegerWithValue(int64(c.editor.Cursor.Row)), nil
}

func (c *Commander) colImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.IntegerWithValue(int64(c.editor.Cursor.Col)), nil
}

func (c *Commander) lineCountImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.IntegerWithValue(int64(c.editor.Buffer.LineCount())), nil
}

func (c *Commander) lineImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	row, err := intArg(args, 0)
	if err != nil {
		return nil, err
	}
	return golisp.StringWithValue(c.editor.Buffer.Line(row)), nil
}

func (c *Commander) textImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.StringWithValue(c.editor.Buffer.Text()), nil
}

// ParseEval evaluates a sequence of lisp expressions against the editor
// and returns the printed value of the last one.
func (c *Commander) ParseEval(source string) (string, error) {
	c.bindPrimitives()
	value, err := golisp.ParseAndEval("(begin " + source + "\n)")
	if err != nil {
		return "", err
	}
	return golisp.String(value), nil
}

func (c *Commander) ParseEvalFile(path string) (string, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading script %s: %w", path, err)
	}
	return c.ParseEval(string(source))
}
