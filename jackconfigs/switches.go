package jackconfigs

import (
	"github.com/reusee/jackc/cmds"
	"github.com/reusee/jackc/configs"
)

type ReferenceCompat bool

var compatFlag = cmds.Switch("-compat")

func (Module) ReferenceCompat(
	loader configs.Loader,
) ReferenceCompat {
	if *compatFlag {
		return true
	}
	v, _ := configs.First[bool](loader, "reference_compat")
	return ReferenceCompat(v)
}

// TokensXML enables the <Unit>T.xml token listing beside each source.
type TokensXML bool

var tokensXMLFlag = cmds.Switch("-tokens-xml")

func (Module) TokensXML(
	loader configs.Loader,
) TokensXML {
	if *tokensXMLFlag {
		return true
	}
	v, _ := configs.First[bool](loader, "tokens_xml")
	return TokensXML(v)
}

// AllOnesTrue makes true compile to -1.
type AllOnesTrue bool

var allOnesTrueFlag = cmds.Switch("-true-all-ones")

func (Module) AllOnesTrue(
	loader configs.Loader,
) AllOnesTrue {
	if *allOnesTrueFlag {
		return true
	}
	v, _ := configs.First[bool](loader, "all_ones_true")
	return AllOnesTrue(v)
}
