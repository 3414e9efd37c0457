// Package explain contains the confres explainer logic
package explain

import (
	"reflect"

	"github.com/lyraproj/dgo/dgo"
	"github.com/lyraproj/dgo/tf"
	"github.com/lyraproj/dgo/util"
	"github.com/lyraproj/dgo/vf"
	"github.com/lyraproj/confres/api"
)

type event string

const (
	found    = `found`
	notFound = `not_found`
)

func (e event) String() string {
	return string(e)
}

type explainNode interface {
	dgo.Value
	dgo.Indentable
	appendBranch(branch explainNode)
	appendText(text string)
	branches() []explainNode
	event() event
	found(address api.Address)
	notFound()
	initMap() dgo.Map
	initialize(dgo.Map)
	parent() explainNode
	setBranches([]explainNode)
	setEvent(event)
	setParent(explainNode)
	setTexts([]string)
	setAddress(dgo.Value)
	texts() []string
	address() dgo.Value
}

type explainTreeNode struct {
	p  explainNode
	bs []explainNode
	ts []string
	e  event
	a  dgo.Value
}

var explainNodeRType = reflect.TypeOf((*explainNode)(nil)).Elem()

var extractFunc = func(v dgo.Value) dgo.Value { return v.(explainNode).initMap() }
var createFunc = func(value dgo.Value, en explainNode) dgo.Value {
	en.initialize(value.(dgo.Map))
	return en
}

func (en *explainTreeNode) Equals(other interface{}) bool {
	return en == other
}

func (en *explainTreeNode) HashCode() int {
	return int(reflect.ValueOf(en).Pointer())
}

func initialize(en explainNode, ih dgo.Map) {
	if ba, ok := ih.Get(`branches`).(dgo.Array); ok {
		bs := make([]explainNode, ba.Len())
		ba.EachWithIndex(func(b dgo.Value, i int) {
			bx := b.(explainNode)
			bx.setParent(en)
			bs[i] = bx
		})
		en.setBranches(bs)
	}
	if ta, ok := ih.Get(`texts`).(dgo.Array); ok {
		ts := make([]string, ta.Len())
		ta.EachWithIndex(func(t dgo.Value, i int) {
			ts[i] = t.String()
		})
		en.setTexts(ts)
	}
	if v, ok := ih.Get(`event`).(dgo.String); ok {
		en.setEvent(event(v.GoString()))
	}
	en.setAddress(ih.Get(`address`))
}

func initMap(en explainNode) dgo.Map {
	m := vf.MapWithCapacity(5)
	if bs := en.branches(); len(bs) > 0 {
		m.Put(`branches`, vf.Array(bs))
	}
	if e := en.event(); e != event(``) {
		m.Put(`event`, e.String())
	}
	if a := en.address(); a != nil {
		m.Put(`address`, a)
	}
	if ts := en.texts(); len(ts) > 0 {
		m.Put(`texts`, vf.Array(ts))
	}
	return m
}

func (en *explainTreeNode) AppendTo(w dgo.Indenter) {
	en.dumpTexts(w)
}

func (en *explainTreeNode) appendBranch(branch explainNode) {
	en.bs = append(en.bs, branch)
}

func (en *explainTreeNode) appendText(text string) {
	en.ts = append(en.ts, text)
}

func (en *explainTreeNode) branches() []explainNode {
	return en.bs
}

func (en *explainTreeNode) dumpOutcome(w dgo.Indenter) {
	switch en.e {
	case notFound:
		w.NewLine()
		w.Append(`Not found`)
	case found:
		w.NewLine()
		w.Append(`Found: `)
		w.AppendValue(en.a)
	}
	en.dumpTexts(w)
}

func (en *explainTreeNode) dumpTexts(w dgo.Indenter) {
	for _, t := range en.ts {
		w.NewLine()
		w.Append(t)
	}
}

func (en *explainTreeNode) dumpBranches(w dgo.Indenter) {
	for _, b := range en.bs {
		b.AppendTo(w)
	}
}

func (en *explainTreeNode) event() event {
	return en.e
}

func (en *explainTreeNode) found(address api.Address) {
	en.a = address
	en.e = found
}

func (en *explainTreeNode) notFound() {
	en.e = notFound
}

func (en *explainTreeNode) parent() explainNode {
	return en.p
}

func (en *explainTreeNode) setBranches(bs []explainNode) {
	en.bs = bs
}

func (en *explainTreeNode) setEvent(e event) {
	en.e = e
}

func (en *explainTreeNode) setParent(p explainNode) {
	en.p = p
}

func (en *explainTreeNode) setTexts(ts []string) {
	en.ts = ts
}

func (en *explainTreeNode) setAddress(a dgo.Value) {
	en.a = a
}

func (en *explainTreeNode) texts() []string {
	return en.ts
}

func (en *explainTreeNode) address() dgo.Value {
	return en.a
}

type explainStep struct {
	explainTreeNode
	step     string
	basePath string
	name     string
}

var explainStepType = tf.NewNamed(
	`confres.explainStep`,
	func(value dgo.Value) dgo.Value { return createFunc(value, &explainStep{}) },
	extractFunc,
	reflect.TypeOf(&explainStep{}),
	explainNodeRType,
	nil)

func (en *explainStep) Type() dgo.Type {
	return tf.ExactNamed(explainStepType, en)
}

func (en *explainStep) initialize(ih dgo.Map) {
	initialize(en, ih)
	if v, ok := ih.Get(`step`).(dgo.String); ok {
		en.step = v.GoString()
	}
	if v, ok := ih.Get(`basePath`).(dgo.String); ok {
		en.basePath = v.GoString()
	}
	if v, ok := ih.Get(`name`).(dgo.String); ok {
		en.name = v.GoString()
	}
}

func (en *explainStep) initMap() dgo.Map {
	m := initMap(en)
	m.Put(`step`, en.step)
	if en.basePath != `` {
		m.Put(`basePath`, en.basePath)
	}
	m.Put(`name`, en.name)
	return m
}

func (en *explainStep) Equals(value interface{}) bool {
	return en == value
}

func (en *explainStep) AppendTo(w dgo.Indenter) {
	w.NewLine()
	w.Append(`Step "`)
	w.Append(en.step)
	w.Append(`" name: "`)
	w.Append(en.name)
	w.AppendRune('"')
	if en.basePath != `` {
		w.Append(` base: "`)
		w.Append(en.basePath)
		w.AppendRune('"')
	}
	w = w.Indent()
	en.dumpBranches(w)
	en.dumpOutcome(w)
}

func (en *explainStep) String() string {
	return util.ToIndentedString(en)
}

type explainer struct {
	explainTreeNode
	current explainNode
}

var explainerType = tf.NewNamed(
	`confres.explainer`,
	func(value dgo.Value) dgo.Value { return createFunc(value, &explainer{}) },
	extractFunc,
	reflect.TypeOf(&explainer{}),
	reflect.TypeOf((*api.Explainer)(nil)).Elem(),
	nil)

func (ex *explainer) Type() dgo.Type {
	return tf.ExactNamed(explainerType, ex)
}

// NewExplainer creates a new Explainer instance
func NewExplainer() api.Explainer {
	ex := &explainer{}
	ex.current = ex
	return ex
}

func (ex *explainer) initialize(ih dgo.Map) {
	initialize(ex, ih)
	ex.current = ex
}

func (ex *explainer) initMap() dgo.Map {
	return initMap(ex)
}

func (ex *explainer) Equals(value interface{}) bool {
	return ex == value
}

func (ex *explainer) AcceptFound(address api.Address) {
	ex.current.found(address)
}

func (ex *explainer) AcceptNotFound() {
	ex.current.notFound()
}

func (ex *explainer) AcceptText(text string) {
	ex.current.appendText(text)
}

func (ex *explainer) PushStep(step, basePath, name string) {
	en := &explainStep{step: step, basePath: basePath, name: name}
	en.setParent(ex.current)
	ex.current.appendBranch(en)
	ex.current = en
}

func (ex *explainer) Pop() {
	if ex.current != nil {
		ex.current = ex.current.parent()
	}
}

func (ex *explainer) AppendTo(w dgo.Indenter) {
	ex.dumpBranches(w)
	ex.dumpTexts(w)
}

func (ex *explainer) String() string {
	return util.ToIndentedString(ex)
}
