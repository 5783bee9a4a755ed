package config

// Default input file names, resolved under DATA_DIR when no manifest is set.
const (
	DefaultRewardWeightsFile = "javelindata_pvp_store_v2.json"
	DefaultRewardsFile       = "javelindata_pvp_rewards_v2.json"
	DefaultLootTablesFile    = "javelindata_loottables_pvp_rewards_track.json"
	DefaultLootBucketsFile   = "javelindata_lootbuckets_pvp.json"
	DefaultItemCSVFile       = "exportItemsNamesS10.csv"
	DefaultLocalizationFile  = "en-us.json"
	DefaultEmotesFile        = "javelindata_emotedefinitions.json"
	DefaultHousingFile       = "javelindata_housingitems.json"
	DefaultGameEventsFile    = "javelindata_gameevents.json"
)

// Error messages
const (
	ErrMsgParseEnv        = "parse env"
	ErrMsgInvalidConfig   = "invalid configuration"
	ErrMsgReadManifest    = "failed to read manifest"
	ErrMsgParseManifest   = "failed to parse manifest"
	ErrMsgInvalidManifest = "invalid manifest"
)

// Warnings
const (
	WarnDataDirMissing  = "DATA_DIR does not exist: %s"
	WarnOutputDirAbsent = "OUTPUT_DIR does not exist and will be created: %s"
)
