package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

type StatKey string

const (
	StatSTR StatKey = "str"
	StatINT StatKey = "intel"
	StatWIL StatKey = "wil"
	StatFIN StatKey = "fin"
	StatCHA StatKey = "cha"
)

func (k StatKey) IsValid() bool {
	switch k {
	case StatSTR, StatINT, StatWIL, StatFIN, StatCHA:
		return true
	default:
		return false
	}
}

func ParseStatKey(input string) (StatKey, error) {
	k := StatKey(strings.TrimSpace(strings.ToLower(input)))
	if !k.IsValid() {
		return "", fmt.Errorf("invalid stat: %q (str|intel|wil|fin|cha)", input)
	}
	return k, nil
}

// Quest is one immutable catalog entry. Weekly quests are claimed through
// the focus tracker and never count toward the daily set or the
// mandatory-miss check.
type Quest struct {
	Key         string
	Name        string
	XP          int
	Gold        int
	BonusStat   StatKey
	BonusAmount int
	Mandatory   bool
	Weekly      bool
}

// Catalog is the load-time-constant quest table. It is never persisted.
type Catalog struct {
	quests map[string]Quest
	order  []string
}

func NewCatalog(quests []Quest) (*Catalog, error) {
	c := &Catalog{quests: make(map[string]Quest, len(quests))}
	for _, q := range quests {
		if q.Key == "" || q.Name == "" {
			return nil, fmt.Errorf("quest %q: key and name are required", q.Key)
		}
		if q.XP < 0 || q.Gold < 0 || q.BonusAmount < 0 {
			return nil, fmt.Errorf("quest %q: rewards must be non-negative", q.Key)
		}
		if !q.BonusStat.IsValid() {
			return nil, fmt.Errorf("quest %q: invalid bonus stat %q", q.Key, q.BonusStat)
		}
		if _, dup := c.quests[q.Key]; dup {
			return nil, fmt.Errorf("quest %q: duplicate key", q.Key)
		}
		c.quests[q.Key] = q
		c.order = append(c.order, q.Key)
	}
	return c, nil
}

func (c *Catalog) Get(key string) (Quest, bool) {
	q, ok := c.quests[key]
	return q, ok
}

// Daily returns the daily quests in catalog order.
func (c *Catalog) Daily() []Quest {
	var out []Quest
	for _, k := range c.order {
		if q := c.quests[k]; !q.Weekly {
			out = append(out, q)
		}
	}
	return out
}

// MandatoryKeys returns the keys whose omission triggers the day-boundary
// penalty.
func (c *Catalog) MandatoryKeys() []string {
	var out []string
	for _, k := range c.order {
		if q := c.quests[k]; q.Mandatory && !q.Weekly {
			out = append(out, k)
		}
	}
	return out
}

func (c *Catalog) DailyCount() int {
	return len(c.Daily())
}

type catalogFile struct {
	Quests map[string]struct {
		Name      string `toml:"name"`
		XP        int    `toml:"xp"`
		Gold      int    `toml:"gold"`
		Stat      string `toml:"stat"`
		Bonus     int    `toml:"bonus"`
		Mandatory bool   `toml:"mandatory"`
		Weekly    bool   `toml:"weekly"`
	} `toml:"quests"`
	Order []string `toml:"order"`
}

// LoadCatalog reads a quest catalog from a TOML file. The optional order
// list fixes display order; unlisted keys follow alphabetically by key.
func LoadCatalog(path string) (*Catalog, error) {
	var file catalogFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}
	if len(file.Quests) == 0 {
		return nil, fmt.Errorf("catalog %s: no quests defined", path)
	}

	keys := make([]string, 0, len(file.Quests))
	listed := make(map[string]bool, len(file.Order))
	for _, k := range file.Order {
		if _, ok := file.Quests[k]; !ok {
			return nil, fmt.Errorf("catalog %s: order lists unknown quest %q", path, k)
		}
		keys = append(keys, k)
		listed[k] = true
	}
	var rest []string
	for k := range file.Quests {
		if !listed[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	keys = append(keys, rest...)

	quests := make([]Quest, 0, len(keys))
	for _, k := range keys {
		entry := file.Quests[k]
		stat, err := ParseStatKey(entry.Stat)
		if err != nil {
			return nil, fmt.Errorf("catalog %s: quest %q: %w", path, k, err)
		}
		quests = append(quests, Quest{
			Key:         k,
			Name:        entry.Name,
			XP:          entry.XP,
			Gold:        entry.Gold,
			BonusStat:   stat,
			BonusAmount: entry.Bonus,
			Mandatory:   entry.Mandatory,
			Weekly:      entry.Weekly,
		})
	}
	return NewCatalog(quests)
}
