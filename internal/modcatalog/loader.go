package modcatalog

import (
	"crypto/sha256"
	"embed"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/rsnyderaustin/poe-craftsim/internal/domain"
	"github.com/rsnyderaustin/poe-craftsim/internal/validation"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// Sentinel errors for catalog loading
var (
	ErrInvalidCatalog = errors.New("invalid catalog")
	ErrDuplicateTier  = errors.New("duplicate tier id")
)

// File is the on-disk JSON representation of a catalog
type File struct {
	Version     string    `json:"version" validate:"required"`
	Description string    `json:"description,omitempty"`
	Tiers       []TierDef `json:"tiers" validate:"required,min=1,dive"`
}

// TierDef is one tier row in the catalog file
type TierDef struct {
	AttributeType        string     `json:"attribute_type" validate:"required"`
	TierID               string     `json:"tier_id" validate:"required"`
	AffixType            string     `json:"affix_type" validate:"oneof=prefix suffix"`
	ItemLevelRequirement int        `json:"item_level_requirement" validate:"gte=0"`
	ValueRanges          []RangeDef `json:"value_ranges,omitempty" validate:"dive"`
	Weight               float64    `json:"weight" validate:"gte=0"`
	Tags                 []string   `json:"tags,omitempty"`
}

// RangeDef is a [min, max] sub-value range
type RangeDef struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Loader reads catalog files into immutable Memory catalogs
type Loader interface {
	Load(path string) (*Memory, error)
	Parse(data []byte) (*Memory, error)
}

type catalogLoader struct {
	schemaValidator validation.SchemaValidator
	validate        *validator.Validate
}

// NewLoader creates a Loader backed by the embedded catalog schema
func NewLoader() Loader {
	return &catalogLoader{
		schemaValidator: validation.NewSchemaValidator(schemaFS),
		validate:        validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Load reads, validates and builds the catalog stored at path. Each call
// returns a fresh Memory, so reloading never disturbs running simulations.
func (l *catalogLoader) Load(path string) (*Memory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalogFileFailed, err)
	}

	if err := l.schemaValidator.ValidateBytes(data, CatalogSchemaPath); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailedFmt, path, err)
	}

	return l.build(data)
}

// Parse validates and builds a catalog from raw JSON bytes
func (l *catalogLoader) Parse(data []byte) (*Memory, error) {
	if err := l.schemaValidator.ValidateBytes(data, CatalogSchemaPath); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailedFmt, "catalog", err)
	}
	return l.build(data)
}

func (l *catalogLoader) build(data []byte) (*Memory, error) {
	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf(ErrMsgParseCatalogFailed, err)
	}

	tiers, err := l.convert(&file)
	if err != nil {
		return nil, err
	}

	sum := sha256.Sum256(data)
	m := NewMemory(tiers)
	m.digest = hex.EncodeToString(sum[:])
	return m, nil
}

// convert validates the parsed file and groups its rows by attribute type
func (l *catalogLoader) convert(file *File) (map[string][]domain.ModTierEntry, error) {
	if len(file.Tiers) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCatalog, ErrMsgNoTiersDefined)
	}
	if err := l.validate.Struct(file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	tiers := make(map[string][]domain.ModTierEntry)
	seen := make(map[string]map[string]bool)

	for _, def := range file.Tiers {
		attr := normalizeAttributeType(def.AttributeType)
		if seen[attr] == nil {
			seen[attr] = make(map[string]bool)
		}
		if seen[attr][def.TierID] {
			return nil, fmt.Errorf(ErrMsgDuplicateTierFmt, ErrDuplicateTier, def.TierID, def.AttributeType)
		}
		seen[attr][def.TierID] = true

		entry, err := toEntry(def)
		if err != nil {
			return nil, err
		}
		tiers[attr] = append(tiers[attr], entry)
	}
	return tiers, nil
}

func toEntry(def TierDef) (domain.ModTierEntry, error) {
	affix, err := domain.ParseAffixType(def.AffixType)
	if err != nil {
		return domain.ModTierEntry{}, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	ranges := make([]domain.ValueRange, len(def.ValueRanges))
	for i, r := range def.ValueRanges {
		if r.Min > r.Max {
			return domain.ModTierEntry{}, fmt.Errorf("%w: "+ErrMsgInvertedRangeFmt, ErrInvalidCatalog, def.TierID, i, r.Min, r.Max)
		}
		ranges[i] = domain.ValueRange{Min: r.Min, Max: r.Max}
	}

	return domain.ModTierEntry{
		TierID:               def.TierID,
		AffixType:            affix,
		ItemLevelRequirement: def.ItemLevelRequirement,
		ValueRanges:          ranges,
		Weight:               def.Weight,
		Tags:                 def.Tags,
	}, nil
}
