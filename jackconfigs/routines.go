package jackconfigs

import (
	"github.com/reusee/jackc/configs"
)

// runtime routines called by emitted code, empty means the compiler default

type Allocator string

type Multiply string

type Divide string

type StringNew string

type StringAppend string

// config errors are reported by Loader.Err

func (Module) Allocator(loader configs.Loader) Allocator {
	v, _ := configs.First[Allocator](loader, "allocator")
	return v
}

func (Module) Multiply(loader configs.Loader) Multiply {
	v, _ := configs.First[Multiply](loader, "multiply")
	return v
}

func (Module) Divide(loader configs.Loader) Divide {
	v, _ := configs.First[Divide](loader, "divide")
	return v
}

func (Module) StringNew(loader configs.Loader) StringNew {
	v, _ := configs.First[StringNew](loader, "string_new")
	return v
}

func (Module) StringAppend(loader configs.Loader) StringAppend {
	v, _ := configs.First[StringAppend](loader, "string_append")
	return v
}
