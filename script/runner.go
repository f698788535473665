package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/gridstorm/storage"
)

// Runner binds one storage engine into an embedded Lua state. Mutation
// functions are exposed as the global `storage` module; the functions that
// can fail (insert, remove, replace) return a boolean instead of raising,
// so scripts can tolerate partial matches the way the Go API does.
type Runner struct {
	engine *storage.Engine
	L      *lua.LState
	closed bool
}

// NewRunner creates a runner bound to the given engine.
func NewRunner(engine *storage.Engine) *Runner {
	r := &Runner{
		engine: engine,
		L:      lua.NewState(),
	}
	r.register()
	return r
}

// Run executes a Lua chunk.
func (r *Runner) Run(src string) error {
	if r.closed {
		return ErrRunnerClosed
	}
	return r.L.DoString(src)
}

// RunFile executes a Lua file.
func (r *Runner) RunFile(path string) error {
	if r.closed {
		return ErrRunnerClosed
	}
	return r.L.DoFile(path)
}

// Close releases the Lua state. The runner cannot be used afterwards.
func (r *Runner) Close() {
	if r.closed {
		return
	}
	r.closed = true
	r.L.Close()
}

func (r *Runner) register() {
	mod := r.L.NewTable()
	r.L.SetFuncs(mod, map[string]lua.LGFunction{
		"add_item":          r.luaAddItem,
		"add_items":         r.luaAddItems,
		"insert_item":       r.luaInsertItem,
		"remove_item":       r.luaRemoveItem,
		"replace_item":      r.luaReplaceItem,
		"remove_all_items":  r.luaRemoveAllItems,
		"delete_sections":   r.luaDeleteSections,
		"move_item":         r.luaMoveItem,
		"move_section":      r.luaMoveSection,
		"set_items":         r.luaSetItems,
		"set_supplementary": r.luaSetSupplementary,
		"items":             r.luaItems,
		"index_path":        r.luaIndexPath,
		"item_count":        r.luaItemCount,
		"section_count":     r.luaSectionCount,
		"perform":           r.luaPerform,
	})
	r.L.SetGlobal("storage", mod)
}

func (r *Runner) luaAddItem(L *lua.LState) int {
	item := toGoValue(L.CheckAny(1))
	section := L.CheckInt(2)
	r.engine.AddItem(item, section)
	return 0
}

func (r *Runner) luaAddItems(L *lua.LState) int {
	tbl := L.CheckTable(1)
	section := L.CheckInt(2)
	items, ok := toGoValue(tbl).([]any)
	if !ok {
		L.ArgError(1, "expected an array table of items")
		return 0
	}
	r.engine.AddItems(items, section)
	return 0
}

func (r *Runner) luaInsertItem(L *lua.LState) int {
	item := toGoValue(L.CheckAny(1))
	section := L.CheckInt(2)
	index := L.CheckInt(3)
	err := r.engine.InsertItem(item, storage.Path(section, index))
	L.Push(lua.LBool(err == nil))
	return 1
}

func (r *Runner) luaRemoveItem(L *lua.LState) int {
	item := toGoValue(L.CheckAny(1))
	err := r.engine.RemoveItem(item)
	L.Push(lua.LBool(err == nil))
	return 1
}

func (r *Runner) luaReplaceItem(L *lua.LState) int {
	old := toGoValue(L.CheckAny(1))
	replacement := toGoValue(L.CheckAny(2))
	err := r.engine.ReplaceItem(old, replacement)
	L.Push(lua.LBool(err == nil))
	return 1
}

func (r *Runner) luaRemoveAllItems(L *lua.LState) int {
	r.engine.RemoveAllItemsInSection(L.CheckInt(1))
	return 0
}

func (r *Runner) luaDeleteSections(L *lua.LState) int {
	indexes := make([]int, 0, L.GetTop())
	for i := 1; i <= L.GetTop(); i++ {
		indexes = append(indexes, L.CheckInt(i))
	}
	r.engine.DeleteSections(indexes...)
	return 0
}

func (r *Runner) luaMoveItem(L *lua.LState) int {
	from := storage.Path(L.CheckInt(1), L.CheckInt(2))
	to := storage.Path(L.CheckInt(3), L.CheckInt(4))
	r.engine.MoveItem(from, to)
	return 0
}

func (r *Runner) luaMoveSection(L *lua.LState) int {
	r.engine.MoveSection(L.CheckInt(1), L.CheckInt(2))
	return 0
}

func (r *Runner) luaSetItems(L *lua.LState) int {
	tbl := L.CheckTable(1)
	section := L.CheckInt(2)
	items, ok := toGoValue(tbl).([]any)
	if !ok && tbl.Len() != 0 {
		L.ArgError(1, "expected an array table of items")
		return 0
	}
	r.engine.SetItems(items, section)
	return 0
}

func (r *Runner) luaSetSupplementary(L *lua.LState) int {
	model := toGoValue(L.CheckAny(1))
	kind := L.CheckString(2)
	section := L.CheckInt(3)
	r.engine.SetSupplementary(model, kind, section)
	return 0
}

func (r *Runner) luaItems(L *lua.LState) int {
	items, ok := r.engine.Items(L.CheckInt(1))
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(toLuaValue(L, items))
	return 1
}

func (r *Runner) luaIndexPath(L *lua.LState) int {
	at, ok := r.engine.IndexPath(toGoValue(L.CheckAny(1)))
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LNumber(at.Section))
	L.Push(lua.LNumber(at.Item))
	return 2
}

func (r *Runner) luaItemCount(L *lua.LState) int {
	L.Push(lua.LNumber(r.engine.TotalNumberOfItems()))
	return 1
}

func (r *Runner) luaSectionCount(L *lua.LState) int {
	L.Push(lua.LNumber(r.engine.SectionCount()))
	return 1
}

// luaPerform runs a Lua function inside one batch, so every mutation it
// makes reaches the observer as a single consolidated update.
func (r *Runner) luaPerform(L *lua.LState) int {
	fn := L.CheckFunction(1)
	var callErr error
	r.engine.PerformUpdates(func() {
		callErr = L.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true})
	})
	if callErr != nil {
		L.RaiseError("perform: %v", callErr)
	}
	return 0
}
