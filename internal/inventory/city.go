package inventory

import (
	"encoding/json"
	"fmt"

	"citylaw/internal/domain"
)

var cityRequired = []string{
	"city",
	"state",
	"state_abbr",
	"county",
	"slug",
	"practice",
	"courts",
	"law_enforcement",
	"dmv",
}

// DecodeCity parses and validates the city pack stored as {slug}.json.
// Rules are checked in order: required keys, practice, slug, courts,
// law_enforcement, dmv.agency. The practice and slug rules are applied to the
// raw values so a wrong-typed value reports the rule it breaks.
func DecodeCity(slug domain.Slug, raw []byte) (domain.CityPack, error) {
	name := slug.String()

	f, err := decodeFields(raw)
	if err != nil {
		return domain.CityPack{}, malformed(PackCity, name, err)
	}
	if key, ok := f.missing(cityRequired); ok {
		return domain.CityPack{}, missingField(PackCity, name, key)
	}
	if s, ok := f.str("practice"); !ok || domain.PracticeKey(s) != domain.PracticeDUI {
		return domain.CityPack{}, invalidPractice(name, f.text("practice"))
	}
	if s, ok := f.str("slug"); !ok || s != name {
		return domain.CityPack{}, slugMismatch(name, f.text("slug"))
	}
	for _, key := range []string{"courts", "law_enforcement"} {
		if !f.isArray(key) {
			return domain.CityPack{}, emptyArray(PackCity, name, key)
		}
	}

	var pack domain.CityPack
	if err := json.Unmarshal(raw, &pack); err != nil {
		return domain.CityPack{}, malformed(PackCity, name, err)
	}
	if err := ValidateCity(slug, pack); err != nil {
		return domain.CityPack{}, err
	}
	return pack, nil
}

// ValidateCity checks the value rules of a decoded city pack against the
// filename slug it was loaded from.
func ValidateCity(slug domain.Slug, pack domain.CityPack) error {
	name := slug.String()

	if pack.Practice != domain.PracticeDUI {
		return invalidPractice(name, fmt.Sprintf("%q", pack.Practice))
	}
	if pack.Slug != slug {
		return slugMismatch(name, fmt.Sprintf("%q", pack.Slug))
	}
	if len(pack.Courts) == 0 {
		return emptyArray(PackCity, name, "courts")
	}
	if len(pack.LawEnforcement) == 0 {
		return emptyArray(PackCity, name, "law_enforcement")
	}
	if pack.DMV.Agency == "" {
		return missingField(PackCity, name, "dmv.agency")
	}
	return nil
}

// invalidPractice and slugMismatch take the offending value already rendered.
func invalidPractice(name, got string) error {
	return &ValidationError{
		Kind: KindInvalidEnumValue, Pack: PackCity, Slug: name, Field: "practice",
		Detail: fmt.Sprintf("practice must be %q, got %s", domain.PracticeDUI, got),
	}
}

func slugMismatch(name, got string) error {
	return &ValidationError{
		Kind: KindSlugMismatch, Pack: PackCity, Slug: name, Field: "slug",
		Detail: fmt.Sprintf("slug mismatch: filename %q vs pack slug %s", name, got),
	}
}
