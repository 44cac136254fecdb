package view

import (
	"slices"
	"sort"
)

// ValueKind tags the variant carried by a Value.
type ValueKind uint8

const (
	ValueID ValueKind = iota + 1
	ValueFlag
	ValueText
	ValueChild
	ValueList
)

// Value is one field of an Object.
type Value struct {
	kind  ValueKind
	id    ObjectID
	flag  bool
	text  string
	child Object
	list  []Object
}

func IDValue(id ObjectID) Value      { return Value{kind: ValueID, id: id} }
func FlagValue(b bool) Value         { return Value{kind: ValueFlag, flag: b} }
func TextValue(s string) Value       { return Value{kind: ValueText, text: s} }
func ChildValue(o Object) Value      { return Value{kind: ValueChild, child: o} }
// ListValue copies items; later changes to the caller's slice are not seen.
func ListValue(items []Object) Value { return Value{kind: ValueList, list: slices.Clone(items)} }

func (v Value) Kind() ValueKind { return v.kind }

type field struct {
	key string
	val Value
}

// Object is an immutable map from field name to Value, iterated in key order.
// The zero value is the empty object.
type Object struct {
	fields []field
}

// Invalid is returned by Txt for missing or non-text fields.
const Invalid = "INVALID"

// Get returns the raw value stored under key.
func (o Object) Get(key string) (Value, bool) {
	i := sort.Search(len(o.fields), func(i int) bool { return o.fields[i].key >= key })
	if i < len(o.fields) && o.fields[i].key == key {
		return o.fields[i].val, true
	}
	return Value{}, false
}

func (o Object) Len() int      { return len(o.fields) }
func (o Object) IsEmpty() bool { return len(o.fields) == 0 }

// Keys returns the field names in order.
func (o Object) Keys() []string {
	keys := make([]string, len(o.fields))
	for i, f := range o.fields {
		keys[i] = f.key
	}
	return keys
}

// ID returns the handle under key, or the null handle.
func (o Object) ID(key string) ObjectID {
	if v, ok := o.Get(key); ok && v.kind == ValueID {
		return v.id
	}
	return NullID()
}

func (o Object) TryText(key string) (string, bool) {
	if v, ok := o.Get(key); ok && v.kind == ValueText {
		return v.text, true
	}
	return "", false
}

// Txt returns the text under key, or Invalid.
func (o Object) Txt(key string) string {
	if s, ok := o.TryText(key); ok {
		return s
	}
	return Invalid
}

func (o Object) Flag(key string) bool {
	if v, ok := o.Get(key); ok && v.kind == ValueFlag {
		return v.flag
	}
	return false
}

func (o Object) TryChild(key string) (Object, bool) {
	if v, ok := o.Get(key); ok && v.kind == ValueChild {
		return v.child, true
	}
	return Object{}, false
}

// Child returns the nested object under key, or the empty object.
func (o Object) Child(key string) Object {
	c, _ := o.TryChild(key)
	return c
}

// TryList returns a copy of the object list under key.
func (o Object) TryList(key string) ([]Object, bool) {
	if v, ok := o.Get(key); ok && v.kind == ValueList {
		return slices.Clone(v.list), true
	}
	return nil, false
}

// List returns the object list under key, or nil.
func (o Object) List(key string) []Object {
	l, _ := o.TryList(key)
	return l
}

// Builder accumulates fields for a new Object. Setting a key twice keeps the
// last value.
type Builder struct {
	fields []field
}

func NewBuilder() *Builder {
	return &Builder{fields: make([]field, 0, 8)}
}

func (b *Builder) Set(key string, v Value) *Builder {
	for i := range b.fields {
		if b.fields[i].key == key {
			b.fields[i].val = v
			return b
		}
	}
	b.fields = append(b.fields, field{key: key, val: v})
	return b
}

func (b *Builder) ID(key string, id ObjectID) *Builder  { return b.Set(key, IDValue(id)) }
func (b *Builder) Flag(key string, v bool) *Builder     { return b.Set(key, FlagValue(v)) }
func (b *Builder) Text(key, s string) *Builder          { return b.Set(key, TextValue(s)) }
func (b *Builder) Child(key string, o Object) *Builder  { return b.Set(key, ChildValue(o)) }
func (b *Builder) List(key string, l []Object) *Builder { return b.Set(key, ListValue(l)) }

// Build returns the finished Object. The builder may be reused afterwards
// without affecting it.
func (b *Builder) Build() Object {
	fields := make([]field, len(b.fields))
	copy(fields, b.fields)
	sort.Slice(fields, func(i, j int) bool { return fields[i].key < fields[j].key })
	return Object{fields: fields}
}
