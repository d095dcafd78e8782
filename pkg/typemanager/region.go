package typemanager

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/plblum/jTAC-sub002/pkg/culture"
)

// DefaultRegion names the record used when the culture's region has none.
const DefaultRegion = "default"

// RegionRecord describes the accepted shape of a value in one region.
type RegionRecord struct {
	Name    string
	Pattern *regexp.Regexp
	// Validate runs after Pattern matches. Optional.
	Validate func(s string) bool
	// ToNeutral converts a matching value to its storage form. nil keeps
	// the value.
	ToNeutral func(s string) string
	// FromNeutral converts the storage form to display text. nil keeps it.
	FromNeutral func(s string) string
}

func (r RegionRecord) matches(s string) bool {
	if !r.Pattern.MatchString(s) {
		return false
	}
	return r.Validate == nil || r.Validate(s)
}

func (r RegionRecord) toNeutral(s string) string {
	if r.ToNeutral == nil {
		return s
	}
	return r.ToNeutral(s)
}

func (r RegionRecord) fromNeutral(s string) string {
	if r.FromNeutral == nil {
		return s
	}
	return r.FromNeutral(s)
}

// RegionTable is a read-only set of records keyed by region name. Region
// names are case-insensitive.
type RegionTable struct {
	name    string
	records map[string]RegionRecord
}

// NewRegionTable builds a table. A later record replaces an earlier one with
// the same name.
func NewRegionTable(name string, records ...RegionRecord) *RegionTable {
	t := &RegionTable{name: name, records: make(map[string]RegionRecord, len(records))}
	for _, r := range records {
		t.records[strings.ToUpper(r.Name)] = r
	}
	return t
}

func (t *RegionTable) Name() string { return t.name }

// Lookup returns the record of a region.
func (t *RegionTable) Lookup(region string) (RegionRecord, bool) {
	r, ok := t.records[strings.ToUpper(strings.TrimSpace(region))]
	return r, ok
}

// Regions returns the region names in sorted order.
func (t *RegionTable) Regions() []string {
	names := make([]string, 0, len(t.records))
	for _, r := range t.records {
		names = append(names, r.Name)
	}
	sort.Strings(names)
	return names
}

// RegionString manages text whose valid shape depends on a region, such as
// phone numbers and postal codes. The regionName option selects regions
// explicitly ("US|CA" accepts either); when empty the region of the culture
// is used, falling back to DefaultRegion.
//
// Options: cultureName, trim, caseInsensitive, maxLength, regionName.
type RegionString struct {
	stringCore
	table      *RegionTable
	regionName string
}

// NewRegionString creates a manager over table.
func NewRegionString(typeName string, table *RegionTable, provider culture.Provider, opts Options) (*RegionString, error) {
	if table == nil {
		return nil, fmt.Errorf("%s: region table is required", typeName)
	}
	m := &RegionString{stringCore: newStringCore(typeName, provider), table: table}
	if err := m.Configure(opts); err != nil {
		return nil, err
	}
	return m, nil
}

// NewPhoneNumber creates a RegionString over PhoneNumberTable.
func NewPhoneNumber(provider culture.Provider, opts Options) (*RegionString, error) {
	return NewRegionString("PhoneNumber", PhoneNumberTable, provider, opts)
}

// NewPostalCode creates a RegionString over PostalCodeTable.
func NewPostalCode(provider culture.Provider, opts Options) (*RegionString, error) {
	return NewRegionString("PostalCode", PostalCodeTable, provider, opts)
}

func (m *RegionString) SetOption(name string, value any) error { return setOption(m, name, value) }
func (m *RegionString) Configure(opts Options) error           { return configure(m, opts) }

func (m *RegionString) setOption(name string, value any) (bool, error) {
	if name == "regionName" {
		s, err := asString(value)
		if err != nil {
			return true, err
		}
		for _, region := range splitRegions(s) {
			if _, ok := m.table.Lookup(region); !ok {
				return true, fmt.Errorf("no %s rules for region %q", m.table.Name(), region)
			}
		}
		m.regionName = s
		return true, nil
	}
	return m.stringCore.setOption(name, value)
}

func splitRegions(s string) []string {
	var regions []string
	for _, r := range strings.Split(s, "|") {
		if r = strings.TrimSpace(r); r != "" {
			regions = append(regions, r)
		}
	}
	return regions
}

// records returns the records in effect, in the order they are tried.
func (m *RegionString) records() ([]RegionRecord, string, error) {
	if regions := splitRegions(m.regionName); len(regions) > 0 {
		records := make([]RegionRecord, 0, len(regions))
		for _, region := range regions {
			r, _ := m.table.Lookup(region)
			records = append(records, r)
		}
		return records, strings.Join(regions, "|"), nil
	}
	info, err := m.Culture()
	if err != nil {
		return nil, "", m.fail(err)
	}
	if region := info.Region(); region != "" {
		if r, ok := m.table.Lookup(region); ok {
			return []RegionRecord{r}, region, nil
		}
	}
	if r, ok := m.table.Lookup(DefaultRegion); ok {
		return []RegionRecord{r}, DefaultRegion, nil
	}
	return nil, "", m.fail(inputErr("", "no %s rules for culture %q", m.table.Name(), info.Name))
}

// Region returns the name of the first region record that accepts s.
func (m *RegionString) Region(s string) (string, error) {
	r, err := m.match(s)
	if err != nil {
		return "", err
	}
	return r.Name, nil
}

func (m *RegionString) match(s string) (RegionRecord, error) {
	records, regions, err := m.records()
	if err != nil {
		return RegionRecord{}, err
	}
	for _, r := range records {
		if r.matches(s) {
			return r, nil
		}
	}
	return RegionRecord{}, m.fail(inputErr(s, "not a valid %s for %s", m.typeName, regions))
}

func (m *RegionString) ToValue(text string) (any, error) {
	s, ok, err := m.clean(text)
	if err != nil || !ok {
		return nil, err
	}
	if _, err := m.match(s); err != nil {
		return nil, err
	}
	return s, nil
}

// ToValueNeutral converts the storage form back into display text using
// the first region whose record accepts the result.
func (m *RegionString) ToValueNeutral(text string) (any, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	records, regions, err := m.records()
	if err != nil {
		return nil, err
	}
	for _, r := range records {
		if s := r.fromNeutral(text); r.matches(s) {
			return s, nil
		}
	}
	return nil, m.fail(inputErr(text, "not a valid %s for %s", m.typeName, regions))
}

func (m *RegionString) ToStringNeutral(value any) (string, error) {
	if value == nil {
		return "", nil
	}
	s, err := m.native(value)
	if err != nil || s == "" {
		return "", err
	}
	r, err := m.match(s)
	if err != nil {
		return "", err
	}
	return r.toNeutral(s), nil
}

func (m *RegionString) Compare(a, b any) (int, error) { return m.compareStrings(a, b) }
