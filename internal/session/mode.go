package session

import (
	"fmt"
	"strings"

	"revolver/internal/naming"
)

// Mode is the side of the proxy/full-res toggle a session is moved to.
type Mode int

const (
	ModeProxy Mode = iota
	ModeFullRes
)

func (m Mode) String() string {
	if m == ModeFullRes {
		return "fullres"
	}
	return "proxy"
}

// ParseMode accepts "proxy" or "fullres" (also "intermediate").
func ParseMode(value string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "proxy", "proxies":
		return ModeProxy, nil
	case "fullres", "full-res", "intermediate", "intermediates":
		return ModeFullRes, nil
	default:
		return 0, fmt.Errorf("unknown mode %q (want proxy or fullres)", value)
	}
}

type modeRule struct {
	inTarget func(naming.Role) bool
	resolve  func(naming.Resolver, string) (string, bool)
}

var modeRules = map[Mode]modeRule{
	ModeProxy: {
		inTarget: func(r naming.Role) bool { return r == naming.RoleProxy },
		resolve:  naming.Resolver.ResolveProxy,
	},
	ModeFullRes: {
		inTarget: func(r naming.Role) bool { return r == naming.RoleOriginal || r.IsIntermediate() },
		resolve:  naming.Resolver.ResolveFullRes,
	},
}
