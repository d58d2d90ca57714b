package xclass

import (
	_ "embed"
	"fmt"
	"net/netip"
	"sync"

	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/omeyang/ipcalc/pkg/calc/xaddr"
)

//go:embed rules.yaml
var rulesYAML []byte

// Rule 是特殊用途范围表的一条规则。
type Rule struct {
	// Prefix 是范围的 CIDR 前缀。
	Prefix netip.Prefix

	// Tag 是命中该范围时报告的标签。
	Tag string
}

// ruleSpec 是 rules.yaml 中一条规则的原始形式。
type ruleSpec struct {
	Prefix string `koanf:"prefix"`
	Tag    string `koanf:"tag"`
}

type ruleTables struct {
	v4 []Rule
	v6 []Rule
}

// loadTables 解码内嵌规则表。内嵌数据在构建期固定，
// 解码失败属于程序缺陷，直接 panic。
var loadTables = sync.OnceValue(func() ruleTables {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(rulesYAML), kyaml.Parser()); err != nil {
		panic(fmt.Sprintf("xclass: load embedded rules.yaml: %v", err))
	}

	return ruleTables{
		v4: decodeRules(k, "ipv4", xaddr.V4),
		v6: decodeRules(k, "ipv6", xaddr.V6),
	}
})

func decodeRules(k *koanf.Koanf, key string, f xaddr.Family) []Rule {
	var specs []ruleSpec
	if err := k.Unmarshal(key, &specs); err != nil {
		panic(fmt.Sprintf("xclass: decode %s rules: %v", key, err))
	}
	if len(specs) == 0 {
		panic(fmt.Sprintf("xclass: empty %s rule table", key))
	}

	rules := make([]Rule, len(specs))
	for i, s := range specs {
		p, err := netip.ParsePrefix(s.Prefix)
		if err != nil {
			panic(fmt.Sprintf("xclass: %s rule %d: bad prefix %q: %v", key, i, s.Prefix, err))
		}
		if got := familyOfPrefix(p); got != f {
			panic(fmt.Sprintf("xclass: %s rule %d: prefix %q is %s", key, i, s.Prefix, got))
		}
		if s.Tag == "" {
			panic(fmt.Sprintf("xclass: %s rule %d: empty tag", key, i))
		}
		rules[i] = Rule{Prefix: p.Masked(), Tag: s.Tag}
	}
	return rules
}

func familyOfPrefix(p netip.Prefix) xaddr.Family {
	if p.Addr().Is4() {
		return xaddr.V4
	}
	return xaddr.V6
}

// Rules 返回指定地址族的规则表副本，按求值优先级排序。
// 未知地址族返回 nil。
func Rules(f xaddr.Family) []Rule {
	t := loadTables()
	switch f {
	case xaddr.V4:
		return append([]Rule(nil), t.v4...)
	case xaddr.V6:
		return append([]Rule(nil), t.v6...)
	default:
		return nil
	}
}

// TagOf 返回地址命中的特殊用途范围标签。
// 规则按表序求值，首个命中即为结果；无命中返回 ("", false)。
func TagOf(addr xaddr.Address) (string, bool) {
	t := loadTables()
	var rules []Rule
	switch addr.Family() {
	case xaddr.V4:
		rules = t.v4
	case xaddr.V6:
		rules = t.v6
	default:
		return "", false
	}

	for _, r := range rules {
		if r.Prefix.Contains(addr.Addr()) {
			return r.Tag, true
		}
	}
	return "", false
}
