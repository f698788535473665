// Package script exposes the storage mutation API to Lua, so datasets can
// be built and edited by script. A Runner binds one storage.Engine into an
// embedded Lua state as the global `storage` module:
//
//	storage.add_item("apple", 0)
//	storage.insert_item("first", 0, 0)
//	storage.perform(function()
//	    storage.remove_item("apple")
//	    storage.move_section(1, 0)
//	end)
//
// Scalars, arrays, and tables cross the boundary as Go strings, numbers,
// booleans, []any, and map[string]any, which the engine's default deep
// equality handles during search.
//
// gopher-lua's LState is not goroutine-safe; like the engine itself, a
// Runner must be confined to one goroutine.
package script
