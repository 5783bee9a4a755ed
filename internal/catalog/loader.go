package catalog

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/osse101/PvPTrack_Go/internal/domain"
	"github.com/osse101/PvPTrack_Go/internal/logger"
	"github.com/osse101/PvPTrack_Go/internal/sheet"
)

// Paths lists the optional catalog sources. An empty path skips the source.
type Paths struct {
	ItemCSV      string
	Localization string
	Emotes       string
	Housing      string
	GameEvents   string
}

// Loader reads catalog sources, rewriting icon paths under a CDN prefix.
type Loader struct {
	cdnPrefix string
}

// NewLoader creates a loader. An empty prefix uses DefaultCDNPrefix.
func NewLoader(cdnPrefix string) *Loader {
	if cdnPrefix == "" {
		cdnPrefix = DefaultCDNPrefix
	}
	return &Loader{cdnPrefix: cdnPrefix}
}

// Load reads every configured source. Sources that are missing or
// malformed are logged and left empty; Load never fails.
func (l *Loader) Load(ctx context.Context, p Paths) *Catalogs {
	c := New()
	steps := []struct {
		name string
		path string
		load func(*Catalogs, []byte) error
	}{
		{NameItems, p.ItemCSV, l.loadItems},
		{NameLocalization, p.Localization, l.loadLocalization},
		{NameEmotes, p.Emotes, l.loadEmotes},
		{NameHousing, p.Housing, l.loadHousing},
		{NameGameEvents, p.GameEvents, l.loadGameEvents},
	}

	log := logger.FromContext(ctx)
	for _, s := range steps {
		if s.path == "" {
			continue
		}
		data, err := os.ReadFile(s.path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				log.Warn(LogMsgCatalogMissing, LogFieldCatalog, s.name, LogFieldPath, s.path)
			} else {
				log.Warn(LogMsgCatalogInvalid, LogFieldCatalog, s.name, LogFieldPath, s.path, LogFieldError, err)
			}
			continue
		}
		if err := s.load(c, data); err != nil {
			log.Warn(LogMsgCatalogInvalid, LogFieldCatalog, s.name, LogFieldPath, s.path, LogFieldError, err)
			continue
		}
		log.Info(LogMsgCatalogLoaded, LogFieldCatalog, s.name, LogFieldRecords, c.Sizes()[s.name])
	}
	return c
}

// LoadItemCSV parses the item catalog CSV into c.
func (l *Loader) LoadItemCSV(c *Catalogs, r io.Reader) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		return fmt.Errorf("failed to read item catalog header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	idCol, nameCol := column(cols, csvItemIDHeaders), column(cols, csvNameHeaders)
	if idCol < 0 && nameCol < 0 {
		return errors.New(ErrMsgMissingHeader)
	}
	iconCol, rarityCol := column(cols, csvIconHeaders), column(cols, csvRarityHeaders)

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read item catalog: %w", err)
		}
		item := domain.CatalogRecord{
			ID:     field(rec, idCol),
			Name:   field(rec, nameCol),
			Icon:   FullIcon(l.cdnPrefix, field(rec, iconCol)),
			Rarity: field(rec, rarityCol),
		}
		if item.ID == "" && item.Name == "" {
			continue
		}
		c.AddItem(item)
	}
}

func column(cols map[string]int, names []string) int {
	for _, n := range names {
		if i, ok := cols[n]; ok {
			return i
		}
	}
	return -1
}

func field(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func (l *Loader) loadItems(c *Catalogs, data []byte) error {
	return l.LoadItemCSV(c, bytes.NewReader(data))
}

func (l *Loader) loadLocalization(c *Catalogs, data []byte) error {
	if !gjson.ValidBytes(data) {
		return errors.New(sheet.ErrMsgInvalidJSON)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return errors.New(ErrMsgNotAnObject)
	}
	root.ForEach(func(k, v gjson.Result) bool {
		if v.Type == gjson.String {
			c.AddLocalization(k.String(), v.Str)
		}
		return true
	})
	return nil
}

func (l *Loader) loadEmotes(c *Catalogs, data []byte) error {
	s, err := sheet.Parse(NameEmotes, data)
	if err != nil {
		return err
	}
	for _, r := range s.Rows {
		c.AddEmote(r.Str(ColEmoteDisplayName), FullIcon(l.cdnPrefix, r.Str(ColEmoteImage)))
	}
	return nil
}

func (l *Loader) loadHousing(c *Catalogs, data []byte) error {
	s, err := sheet.Parse(NameHousing, data)
	if err != nil {
		return err
	}
	for _, r := range s.Rows {
		c.AddHousing(domain.CatalogRecord{
			ID:     r.FirstStr(housingIDCols...),
			Name:   r.FirstStr(housingNameCols...),
			Icon:   FullIcon(l.cdnPrefix, r.FirstStr(housingIconCols...)),
			Rarity: r.FirstStr(housingRarityCols...),
		})
	}
	return nil
}

func (l *Loader) loadGameEvents(c *Catalogs, data []byte) error {
	s, err := sheet.Parse(NameGameEvents, data)
	if err != nil {
		return err
	}
	for _, r := range s.Rows {
		id := r.FirstStr(gameEventIDCols...)
		if id == "" {
			continue
		}
		ev := domain.GameEvent{ID: id, Rewards: make(map[string]float64)}
		for _, k := range r.Keys() {
			if v, ok := r.Float(k); ok {
				ev.Rewards[k] = v
			}
		}
		c.AddEvent(ev)
	}
	return nil
}
