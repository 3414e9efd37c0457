package fsys

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/lyraproj/dgo/dgo"
	"github.com/lyraproj/dgo/tf"
	"github.com/lyraproj/dgo/util"
	"github.com/lyraproj/dgo/vf"
	"github.com/lyraproj/confres/api"
)

type urlAddress struct {
	u *url.URL
}

var urlAddressType = tf.NewNamed(
	`confres.url`,
	func(v dgo.Value) dgo.Value {
		m := v.(dgo.Map)
		u, err := url.Parse(m.Get(`url`).(dgo.String).GoString())
		if err != nil {
			panic(err)
		}
		return &urlAddress{u: u}
	},
	func(v dgo.Value) dgo.Value {
		a := v.(*urlAddress)
		return vf.Map(`url`, a.u.String())
	},
	reflect.TypeOf(&urlAddress{}),
	reflect.TypeOf((*api.Address)(nil)).Elem(),
	nil)

// NewURL returns a URL Address
func NewURL(u *url.URL) api.Address {
	return &urlAddress{u: u}
}

func (a *urlAddress) Type() dgo.Type {
	return urlAddressType
}

func (a *urlAddress) HashCode() int {
	return util.StringHash(a.u.String())
}

func (a *urlAddress) Equals(value interface{}) bool {
	oa, ok := value.(*urlAddress)
	if ok {
		ok = a.u.String() == oa.u.String()
	}
	return ok
}

func (a *urlAddress) Kind() api.AddressKind {
	return api.KindURL
}

func (a *urlAddress) String() string {
	return fmt.Sprintf("url{ url:%s }", a.u.String())
}

func (a *urlAddress) URL() string {
	return a.u.String()
}

// Path returns the percent-decoded path component for file scheme URLs. The decoding is
// performed by url.Parse which stores the decoded form in URL.Path.
func (a *urlAddress) Path() (string, bool) {
	if a.u.Scheme == `file` {
		return a.u.Path, true
	}
	return ``, false
}

type pathAddress struct {
	path string
}

var pathAddressType = tf.NewNamed(
	`confres.path`,
	func(v dgo.Value) dgo.Value {
		m := v.(dgo.Map)
		return &pathAddress{path: m.Get(`path`).(dgo.String).GoString()}
	},
	func(v dgo.Value) dgo.Value {
		a := v.(*pathAddress)
		return vf.Map(`path`, a.path)
	},
	reflect.TypeOf(&pathAddress{}),
	reflect.TypeOf((*api.Address)(nil)).Elem(),
	nil)

// NewPath returns a local filesystem path Address
func NewPath(path string) api.Address {
	return &pathAddress{path: path}
}

func (a *pathAddress) Type() dgo.Type {
	return pathAddressType
}

func (a *pathAddress) HashCode() int {
	return util.StringHash(a.path)
}

func (a *pathAddress) Equals(value interface{}) bool {
	oa, ok := value.(*pathAddress)
	if ok {
		ok = *a == *oa
	}
	return ok
}

func (a *pathAddress) Kind() api.AddressKind {
	return api.KindPath
}

func (a *pathAddress) String() string {
	return fmt.Sprintf("path{ path:%s }", a.path)
}

func (a *pathAddress) URL() string {
	p := toSlash(a.path)
	if !strings.HasPrefix(p, `/`) {
		p = `/` + p
	}
	u := url.URL{Scheme: `file`, Path: p}
	return u.String()
}

func (a *pathAddress) Path() (string, bool) {
	return a.path, true
}
