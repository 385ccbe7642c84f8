package watchlist

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Feature type ids the OFAC advanced XML uses for digital currency addresses.
// Ids announced by FeatureTypeValue elements are learned while parsing.
var knownCurrencyFeatures = map[string]string{
	"344":  "XBT",
	"345":  "ETH",
	"686":  "ZEC",
	"687":  "DASH",
	"688":  "BTG",
	"689":  "ETC",
	"706":  "BSV",
	"726":  "BCH",
	"746":  "XVG",
	"992":  "TRX",
	"998":  "USDC",
	"1007": "ARB",
	"1008": "BSC",
	"1167": "SOL",
	"573":  "XMR",
	"572":  "LTC",
}

type featureTypeValue struct {
	ID    string `xml:"ID,attr"`
	Value string `xml:",chardata"`
}

type distinctParty struct {
	Profile []struct {
		Feature []struct {
			FeatureTypeID string `xml:"FeatureTypeID,attr"`
			Version       []struct {
				VersionDetail []struct {
					Value string `xml:",chardata"`
				} `xml:"VersionDetail"`
			} `xml:"FeatureVersion"`
		} `xml:"Feature"`
	} `xml:"Profile"`
}

// FeedStats summarises one pass over the feed.
type FeedStats struct {
	Parties   int
	Addresses int
}

// ParseFeed streams the OFAC advanced XML and calls fn for every digital
// currency address found. Values of 10 characters or fewer are skipped.
func ParseFeed(r io.Reader, fn func(address, currency string) error) (FeedStats, error) {
	var stats FeedStats

	currencies := make(map[string]string, len(knownCurrencyFeatures))
	for id, c := range knownCurrencyFeatures {
		currencies[id] = c
	}

	decoder := xml.NewDecoder(r)
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			return stats, nil
		}
		if err != nil {
			return stats, errors.Wrap(err, "read feed")
		}

		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch se.Name.Local {
		case "FeatureTypeValue":
			var ft featureTypeValue
			if err := decoder.DecodeElement(&ft, &se); err != nil {
				continue
			}
			if !strings.Contains(ft.Value, "Digital Currency Address") {
				continue
			}
			if _, exists := currencies[ft.ID]; exists {
				continue
			}
			currency := "UNKNOWN"
			if parts := strings.Split(ft.Value, "-"); len(parts) > 1 {
				currency = strings.TrimSpace(parts[1])
			}
			currencies[ft.ID] = currency

		case "DistinctParty":
			var p distinctParty
			if err := decoder.DecodeElement(&p, &se); err != nil {
				continue
			}
			stats.Parties++
			for _, profile := range p.Profile {
				for _, feature := range profile.Feature {
					currency, isCrypto := currencies[feature.FeatureTypeID]
					if !isCrypto {
						continue
					}
					for _, v := range feature.Version {
						for _, d := range v.VersionDetail {
							addr := strings.TrimSpace(d.Value)
							if len(addr) <= 10 {
								continue
							}
							if err := fn(addr, currency); err != nil {
								return stats, err
							}
							stats.Addresses++
						}
					}
				}
			}
		}
	}
}
