package actors

// attackGroups maps common threat-actor display names to ATT&CK Group IDs,
// extracted from the TVM schema. Declaration order is the tie-break order
// for equal-score suggestions, so entries must not be re-sorted.
var attackGroups = []Mapping{
	// APT groups
	{"APT1", "att&ck::G0006"},
	{"APT5", "att&ck::G1023"},
	{"APT12", "att&ck::G0005"},
	{"APT16", "att&ck::G0023"},
	{"APT17", "att&ck::G0025"},
	{"APT18", "att&ck::G0026"},
	{"APT19", "att&ck::G0073"},
	{"APT28", "att&ck::G0007"},
	{"APT29", "att&ck::G0016"},
	{"APT3", "att&ck::G0022"},
	{"APT30", "att&ck::G0013"},
	{"APT32", "att&ck::G0050"},
	{"APT33", "att&ck::G0064"},
	{"APT34", "att&ck::G0049"},
	{"APT35", "att&ck::G0059"},
	{"APT36", "att&ck::G0134"},
	{"APT37", "att&ck::G0067"},
	{"APT38", "att&ck::G0082"},
	{"APT39", "att&ck::G0087"},
	{"APT40", "att&ck::G0065"},
	{"APT41", "att&ck::G0096"},
	{"APT42", "att&ck::G1044"},
	{"APT43", "att&ck::G0094"},

	// Named groups
	{"TRANSPARENT TRIBE", "att&ck::G0134"},
	{"MYTHIC LEOPARD", "att&ck::G0134"},
	{"COPPER FIELDSTONE", "att&ck::G0134"},
	{"SIDECOPY", "att&ck::G1008"},
	{"LAZARUS GROUP", "att&ck::G0032"},
	{"LAZARUS", "att&ck::G0032"},
	{"KIMSUKY", "att&ck::G0094"},
	{"VOLT TYPHOON", "att&ck::G1017"},
	{"BRONZE SILHOUETTE", "att&ck::G1017"},
	{"MUSTANG PANDA", "att&ck::G0129"},
	{"BRONZE PRESIDENT", "att&ck::G0129"},
	{"SANDWORM", "att&ck::G0034"},
	{"FANCY BEAR", "att&ck::G0007"},
	{"COZY BEAR", "att&ck::G0016"},
	{"TURLA", "att&ck::G0010"},
	{"DRAGONFLY", "att&ck::G0035"},
	{"ENERGETIC BEAR", "att&ck::G0035"},
	{"EQUATION GROUP", "att&ck::G0020"},
	{"CARBANAK", "att&ck::G0008"},
	{"FIN7", "att&ck::G0046"},
	{"FIN8", "att&ck::G0061"},
	{"FIN10", "att&ck::G0051"},
	{"FIN13", "att&ck::G1016"},
	{"LEVIATHAN", "att&ck::G0065"},
	{"OILRIG", "att&ck::G0049"},
	{"MAGIC HOUND", "att&ck::G0059"},
	{"CHARMING KITTEN", "att&ck::G0059"},
	{"GALLIUM", "att&ck::G0093"},
	{"GRANITE TYPHOON", "att&ck::G0093"},
	{"HAFNIUM", "att&ck::G0125"},
	{"SILK TYPHOON", "att&ck::G0125"},
	{"MUDDYWATER", "att&ck::G0069"},
	{"MANGO SANDSTORM", "att&ck::G0069"},
	{"NAIKON", "att&ck::G0019"},
	{"OCEAN LOTUS", "att&ck::G0050"},
	{"OCEANLOTUS", "att&ck::G0050"},
	{"PATCHWORK", "att&ck::G0040"},
	{"DROPPING ELEPHANT", "att&ck::G0040"},
	{"ROCKE", "att&ck::G0106"},
	{"SCARLET MIMIC", "att&ck::G0029"},
	{"STEALTH FALCON", "att&ck::G0038"},
	{"THREAT GROUP-3390", "att&ck::G0027"},
	{"TG-3390", "att&ck::G0027"},
	{"TICK", "att&ck::G0060"},
	{"BRONZE BUTLER", "att&ck::G0060"},
	{"WIZARD SPIDER", "att&ck::G0102"},
	{"TEMP.MIXMASTER", "att&ck::G0102"},
	{"GRIM SPIDER", "att&ck::G0102"},
	{"INDRIK SPIDER", "att&ck::G0119"},
	{"EVIL CORP", "att&ck::G0119"},
}

// attackAliases maps common spelling and punctuation variants to the
// display name used in attackGroups. Each alias is resolved with a single
// substitution; chains are not followed.
var attackAliases = map[string]string{
	"APT 36":            "APT36",
	"APT-36":            "APT36",
	"SIDECOP":           "SIDECOPY",
	"SIDE COPY":         "SIDECOPY",
	"TRANSPARENT-TRIBE": "TRANSPARENT TRIBE",
}

// DefaultTable returns the built-in ATT&CK group table.
func DefaultTable() *Table {
	t, err := NewTable(attackGroups, attackAliases)
	if err != nil {
		// The built-in table is validated by tests; a duplicate here is a bug.
		panic(err)
	}
	return t
}
