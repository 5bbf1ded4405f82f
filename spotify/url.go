package spotify

import (
	"fmt"
	"strings"
)

const SearchEndpoint = "https://api.spotify.com/v1/search"

// Undefined is written in place of an omitted query or type list.
const Undefined = "undefined"

const (
	TypeAlbum    = "album"
	TypeArtist   = "artist"
	TypePlaylist = "playlist"
	TypeTrack    = "track"
)

// Types returns the entity types the search endpoint understands.
func Types() []string {
	return []string{TypeAlbum, TypeArtist, TypePlaylist, TypeTrack}
}

// SearchURL builds the search URL against SearchEndpoint.
// The query is inserted as-is: encoding it is up to the caller.
// An empty query or an empty type list is written as Undefined, so
// SearchURL("") gives "...?q=undefined&type=undefined" rather than "q=".
func SearchURL(query string, types ...string) string {
	return buildURL(SearchEndpoint, query, types)
}

func buildURL(endpoint string, query string, types []string) string {
	if query == "" {
		query = Undefined
	}

	qType := strings.Join(types, ",")
	if len(types) == 0 {
		qType = Undefined
	}

	return endpoint + "?q=" + query + "&type=" + qType
}

// requestURL is buildURL with the bytes a request line cannot carry
// percent-encoded. Everything else, "&" and "," included, is left alone.
func requestURL(endpoint string, query string, types []string) string {
	escaped := make([]string, len(types))
	for i, t := range types {
		escaped[i] = escapeRequestQuery(t)
	}

	return buildURL(endpoint, escapeRequestQuery(query), escaped)
}

func escapeRequestQuery(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c <= ' ' || c >= 0x7f {
			fmt.Fprintf(&b, "%%%02X", c)
			continue
		}
		b.WriteByte(c)
	}

	return b.String()
}
