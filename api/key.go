package api

import (
	"bytes"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/lyraproj/dgo/dgo"
	"github.com/lyraproj/dgo/tf"
	"github.com/lyraproj/dgo/util"
	"github.com/lyraproj/dgo/vf"
)

// A Key is a parsed version of the possibly dot-separated key used to address a value in a
// hierarchical configuration. The parts of a key will be strings or integers
type (
	Key interface {
		dgo.Value

		// Dig returns the result of using the trailing parts of this key to descend into the
		// given value. Nil is returned unless the dig was a success
		Dig(v dgo.Value) dgo.Value

		// Bury is the opposite of Dig. It returns the value that represents what would be found
		// using the root of this key. If this key has one part, the value itself is returned,
		// otherwise a nested chain of single entry maps is returned.
		Bury(v dgo.Value) dgo.Value

		// Parts returns the parts of this key. Each part is either a string or an int value
		Parts() []interface{}

		// Root returns the root key, i.e. the first part
		Root() string

		// Source returns the string that this key was created from
		Source() string
	}

	key struct {
		source string
		parts  []interface{}
	}
)

// A KeyStrategy determines how the strings passed to a hierarchical configuration are
// interpreted as key paths.
type KeyStrategy interface {
	// Parse parses the given string into a Key. A panic carrying the parse error is raised
	// when the string is not a valid key.
	Parse(str string) Key

	// Join renders path segments into the string form that Parse splits them from
	Join(segments []interface{}) string
}

// NewKey parses the given string into a dot-separated Key. Segments may be quoted with single
// or double quotes to retain dots.
func NewKey(str string) Key {
	b := bytes.NewBufferString(``)
	return &key{str, parseUnquoted(b, str, str, []interface{}{})}
}

// NewRawKey creates a Key with the given string as its only part. No splitting takes place.
func NewRawKey(str string) Key {
	return &key{str, []interface{}{str}}
}

var keyType = tf.NewNamed(`confres.key`,
	func(v dgo.Value) dgo.Value {
		return NewKey(v.String())
	},
	func(v dgo.Value) dgo.Value {
		return vf.String(v.(*key).source)
	},
	reflect.TypeOf(&key{}),
	reflect.TypeOf((*Key)(nil)).Elem(), nil)

func (k *key) Bury(value dgo.Value) dgo.Value {
	for i := len(k.parts) - 1; i > 0; i-- {
		p := k.parts[i]
		var kx dgo.Value
		if ix, ok := p.(int); ok {
			kx = vf.Integer(int64(ix))
		} else {
			kx = vf.String(p.(string))
		}
		value = vf.Map(kx, value)
	}
	return value
}

func (k *key) Dig(v dgo.Value) dgo.Value {
	t := len(k.parts)
	for i := 1; i < t; i++ {
		p := k.parts[i]
		v = dig(v, p)
		if v == nil {
			break
		}
	}
	return v
}

func dig(v dgo.Value, p interface{}) dgo.Value {
	switch vc := v.(type) {
	case dgo.Array:
		if ix, ok := p.(int); ok {
			if ix >= 0 && ix < vc.Len() {
				return vc.Get(ix)
			}
		}
	case dgo.Map:
		var kx dgo.Value
		if ix, ok := p.(int); ok {
			kx = vf.Integer(int64(ix))
		} else {
			kx = vf.String(p.(string))
		}
		return vc.Get(kx)
	}
	return nil
}

func (k *key) Equals(value interface{}) bool {
	if ov, ok := value.(*key); ok {
		return k.source == ov.source
	}
	return false
}

func (k *key) HashCode() int {
	return util.StringHash(k.source)
}

func (k *key) Parts() []interface{} {
	return k.parts
}

func (k *key) Type() dgo.Type {
	return keyType
}

func (k *key) Root() string {
	return k.parts[0].(string)
}

func (k *key) Source() string {
	return k.source
}

func (k *key) String() string {
	return k.Type().(dgo.NamedType).ValueString(k)
}

type dottedStrategy struct{}

// Dotted returns the default key strategy where keys are split on unquoted dots and integer
// segments address array elements.
func Dotted() KeyStrategy {
	return dottedStrategy{}
}

func (dottedStrategy) Parse(str string) Key {
	return NewKey(str)
}

func (dottedStrategy) Join(segments []interface{}) string {
	b := bytes.NewBufferString(``)
	for i, s := range segments {
		if i > 0 {
			_ = b.WriteByte('.')
		}
		switch s := s.(type) {
		case int:
			_, _ = b.WriteString(strconv.Itoa(s))
		default:
			sg := s.(string)
			if strings.ContainsRune(sg, '.') {
				_, _ = fmt.Fprintf(b, `'%s'`, sg)
			} else {
				_, _ = b.WriteString(sg)
			}
		}
	}
	return b.String()
}

func parseUnquoted(b *bytes.Buffer, key, part string, parts []interface{}) []interface{} {
	mungedPart := func(ix int, part string) interface{} {
		if i, err := strconv.ParseInt(part, 10, 32); err == nil {
			if ix == 0 {
				panic(fmt.Errorf(`key '%s' first segment cannot be an index`, key))
			}
			return int(i)
		}
		if part == `` {
			panic(fmt.Errorf(`key '%s' contains an empty segment`, key))
		}
		return part
	}

	for i, c := range part {
		switch c {
		case '\'', '"':
			return parseQuoted(b, c, key, part[i+1:], parts)
		case '.':
			parts = append(parts, mungedPart(len(parts), b.String()))
			b.Reset()
		default:
			_, _ = b.WriteRune(c)
		}
	}
	return append(parts, mungedPart(len(parts), b.String()))
}

func parseQuoted(b *bytes.Buffer, q rune, key, part string, parts []interface{}) []interface{} {
	for i, c := range part {
		if c == q {
			if i == len(part)-1 {
				return append(parts, b.String())
			}
			return parseUnquoted(b, key, part[i+1:], parts)
		}
		_, _ = b.WriteRune(c)
	}
	panic(fmt.Errorf(`unterminated quote in key '%s'`, key))
}
