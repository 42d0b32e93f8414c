package mython

// Method is a named, ordered-parameter callable body belonging to a
// Class. Body is the method's MethodBody node, the sole observer of
// a return non-local exit from within it.
type Method struct {
	Name   string
	Params []string
	Body   Statement
}

// Class is a method table with single-inheritance lookup: a name, an
// ordered list of its own methods, an optional parent, and a
// precomputed name→method index over its own methods only.
type Class struct {
	Name    string
	Methods []*Method
	Parent  *Class

	methodIndex map[string]*Method
}

// NewClass builds a class's own-method index at construction time.
// The index is stable afterward: methods are never appended.
func NewClass(name string, methods []*Method, parent *Class) *Class {
	idx := make(map[string]*Method, len(methods))
	for _, m := range methods {
		idx[m.Name] = m
	}
	return &Class{Name: name, Methods: methods, Parent: parent, methodIndex: idx}
}

// GetMethod consults the class's own index first, then recurses into
// the parent on a miss. First match wins along the parent chain
// starting from the receiver's class.
func (c *Class) GetMethod(name string) (*Method, bool) {
	if m, ok := c.methodIndex[name]; ok {
		return m, true
	}
	if c.Parent != nil {
		return c.Parent.GetMethod(name)
	}
	return nil, false
}

// Instance pairs a (non-owned) reference to its class descriptor with
// an owned Closure of fields.
type Instance struct {
	Class  *Class
	Fields *Closure
}

// NewInstanceObject allocates a fresh instance referencing class,
// with an empty field closure.
func NewInstanceObject(class *Class) *Instance {
	return &Instance{Class: class, Fields: NewClosure()}
}

// Call resolves methodName against receiver's class by GetMethod; if
// absent or arity-mismatched it fails. Otherwise it constructs a
// fresh locals closure containing self (a borrowing holder over
// receiver) and each formal parameter bound to the corresponding
// actual argument holder, then executes the method body against that
// closure.
func Call(receiver Holder, methodName string, args []Holder, ctx Context, pos Position) (Holder, error) {
	inst, ok := TryAs[*Instance](receiver)
	if !ok {
		return None(), newRuntimeError("TypeError", pos, "%s is not a class instance", methodName)
	}
	method, ok := inst.Class.GetMethod(methodName)
	if !ok || len(method.Params) != len(args) {
		return None(), newRuntimeError("NoMethodError", pos, "%s has no method %s taking %d argument(s)", inst.Class.Name, methodName, len(args))
	}

	if sc, ok := ctx.(stepCounter); ok {
		if err := sc.step(); err != nil {
			return None(), newRuntimeError("ResourceError", pos, "%s", err.Error())
		}
		if err := sc.enter(); err != nil {
			return None(), newRuntimeError("ResourceError", pos, "%s", err.Error())
		}
		defer sc.leave()
	}

	locals := NewClosure()
	locals.Set("self", Share(receiver))
	for i, name := range method.Params {
		locals.Set(name, args[i])
	}

	result, err := method.Body.Execute(locals, ctx)
	if err != nil {
		if rt, ok := err.(*RuntimeError); ok {
			// The innermost frame so far holds a position inside this
			// method's body; name it, and record the call site as a
			// frame of the caller.
			if n := len(rt.Frames); n > 0 {
				rt.Frames[n-1].Function = inst.Class.Name + "." + methodName
			}
			rt.addFrame(StackFrame{Function: "<script>", Pos: pos})
		}
		return None(), err
	}
	return result, nil
}
