package catalog

// DefaultCDNPrefix is the content-delivery prefix relative icon paths are
// rewritten under.
const DefaultCDNPrefix = "https://cdn.nw-buddy.de/nw-data/live/"

// Item catalog CSV headers. Alternatives are tried in order.
var (
	csvItemIDHeaders = []string{"Item ID", "ItemID"}
	csvNameHeaders   = []string{"Name"}
	csvIconHeaders   = []string{"Icon Path", "IconPath"}
	csvRarityHeaders = []string{"Rarity"}
)

// Emote definition columns.
const (
	ColEmoteDisplayName = "DisplayName"
	ColEmoteImage       = "UiImage"
)

// Housing item columns.
var (
	housingIDCols     = []string{"HouseItemID", "HousingItemID", "ItemID"}
	housingNameCols   = []string{"Name"}
	housingIconCols   = []string{"IconPath", "UiImage"}
	housingRarityCols = []string{"ItemRarity", "Rarity"}
)

// Game event columns.
var gameEventIDCols = []string{"EventID", "EventId", "GameEventID"}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgCatalogMissing = "Optional catalog not found, continuing without it"
	LogMsgCatalogInvalid = "Optional catalog could not be parsed, continuing without it"
	LogMsgCatalogLoaded  = "Loaded catalog"
)

const (
	LogFieldCatalog = "catalog"
	LogFieldPath    = "path"
	LogFieldRecords = "records"
	LogFieldError   = "error"
)

// Catalog names used in logs and metrics.
const (
	NameItems        = "items"
	NameLocalization = "localization"
	NameEmotes       = "emotes"
	NameHousing      = "housing"
	NameGameEvents   = "game_events"
)

// Error messages
const (
	ErrMsgMissingHeader = "item catalog has no item id or name column"
	ErrMsgNotAnObject   = "localization must be a JSON object"
)
