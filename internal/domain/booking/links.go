// Package booking maps a quote total onto the scheduling link of its price band.
package booking

import "strings"

// Band is a price range with its own scheduling page.
type Band struct {
	Name  string
	Slug  string
	Upper int64 // exclusive; 0 means unbounded
}

// Link is the booking redirect for a total.
type Link struct {
	Band string `json:"band"`
	URL  string `json:"url"`
}

var bands = []Band{
	{Name: "under_150", Slug: "under-150", Upper: 150},
	{Name: "under_200", Slug: "150-to-200", Upper: 200},
	{Name: "under_300", Slug: "200-to-300", Upper: 300},
	{Name: "under_400", Slug: "300-to-400", Upper: 400},
	{Name: "under_500", Slug: "400-to-500", Upper: 500},
	{Name: "500_plus", Slug: "500-plus", Upper: 0},
}

// Bands returns the price bands in ascending order.
func Bands() []Band {
	return append([]Band(nil), bands...)
}

type Directory struct {
	baseURL string
}

func NewDirectory(baseURL string) *Directory {
	return &Directory{baseURL: strings.TrimRight(baseURL, "/")}
}

// LinkFor returns the scheduling link for a total.
func (d *Directory) LinkFor(total int64) Link {
	band := BandFor(total)
	return Link{Band: band.Name, URL: d.baseURL + "/" + band.Slug}
}

// BandFor returns the band a total falls into.
func BandFor(total int64) Band {
	for _, b := range bands {
		if b.Upper == 0 || total < b.Upper {
			return b
		}
	}
	return bands[len(bands)-1]
}
