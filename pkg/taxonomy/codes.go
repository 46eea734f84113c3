package taxonomy

import "sort"

// UnrecognizedDescription is returned for codes that are not in the table.
const UnrecognizedDescription = "Unrecognized error code"

// Domain groups error codes by the subsystem that raises them.
type Domain int

const (
	DomainUnrecognized Domain = iota
	DomainGeneral
	DomainGameHandler
	DomainTranslation
	DomainGoFile
	DomainDownloader
	DomainTorrent
	DomainNotification
)

func (d Domain) String() string {
	switch d {
	case DomainGeneral:
		return "general"
	case DomainGameHandler:
		return "game handler"
	case DomainTranslation:
		return "language translation"
	case DomainGoFile:
		return "gofile"
	case DomainDownloader:
		return "downloader"
	case DomainTorrent:
		return "torrent"
	case DomainNotification:
		return "notification"
	default:
		return "unrecognized"
	}
}

type domainRange struct {
	lo, hi int
	domain Domain
}

// sorted by lo, non-overlapping
var domains = [...]domainRange{
	{1000, 1004, DomainGeneral},
	{1100, 1199, DomainGameHandler},
	{1200, 1299, DomainTranslation},
	{1300, 1399, DomainGoFile},
	{1400, 1499, DomainDownloader},
	{1500, 1599, DomainTorrent},
	{1600, 1699, DomainNotification},
}

type codeEntry struct {
	code int
	desc string
}

// sorted by code; looked up with binary search
var codes = [...]codeEntry{
	// general
	{1000, "An unknown error occurred"},
	{1001, "An unhandled exception occurred"},
	{1002, "An unhandled rejection occurred"},
	{1003, "A network error occurred"},
	{1004, "Invalid data received"},

	// game handler
	{1100, "Game not found"},
	{1101, "Failed to launch game"},
	{1102, "Game configuration error"},
	{1103, "Game process error"},
	{1104, "Settings file error"},
	{1105, "Download directory error"},

	// language translation
	{1200, "Language Translation API error occurred"},
	{1201, "Language Translation rate limit exceeded"},
	{1202, "Error processing file for Language Translation operation"},

	// gofile helper
	{1300, "GoFile API error occurred"},
	{1301, "Failed to upload file to GoFile"},
	{1302, "Failed to download file from GoFile"},
	{1303, "GoFile authentication failed"},
	{1304, "GoFile rate limit exceeded"},
	{1305, "Error processing file for GoFile operation"},

	// main downloader
	{1400, "Failed to initialize download"},
	{1401, "Error updating download progress"},
	{1402, "Failed to cancel download"},
	{1403, "Download verification failed"},
	{1404, "Failed to extract downloaded files"},
	{1405, "Error during cleanup"},
	{1406, "Error reading or writing settings file"},
	{1407, "Error reading or writing games file"},
	{1408, "Failed to launch helper process"},

	// torrent handler
	{1500, "Torrent API error occurred"},
	{1501, "Failed to add torrent"},
	{1502, "Failed to remove torrent"},
	{1503, "Failed to get torrent status"},
	{1504, "Torrent configuration error"},
	{1505, "Error processing torrent file"},
	{1506, "Failed to install torrent content"},

	// notification helper
	{1600, "Failed to initialize notification"},
	{1601, "Failed to display notification"},
	{1602, "Invalid or unsupported theme"},
	{1603, "Failed to load notification resources"},
	{1604, "Error during notification animation"},
}

func lookup(code int) (codeEntry, bool) {
	i := sort.Search(len(codes), func(i int) bool { return codes[i].code >= code })
	if i < len(codes) && codes[i].code == code {
		return codes[i], true
	}
	return codeEntry{}, false
}

// ResolveErrorDescription returns the description of code, or
// UnrecognizedDescription when the code is not listed.
func ResolveErrorDescription(code int) string {
	if e, ok := lookup(code); ok {
		return e.desc
	}
	return UnrecognizedDescription
}

// Known reports whether code has a listed description.
func Known(code int) bool {
	_, ok := lookup(code)
	return ok
}

// DomainOf returns the range a code falls in. Unlisted codes inside a range
// still report that range's domain.
func DomainOf(code int) Domain {
	for _, r := range domains {
		if code < r.lo {
			break
		}
		if code <= r.hi {
			return r.domain
		}
	}
	return DomainUnrecognized
}

// Codes returns all listed codes in ascending order.
func Codes() []int {
	out := make([]int, len(codes))
	for i, e := range codes {
		out[i] = e.code
	}
	return out
}
