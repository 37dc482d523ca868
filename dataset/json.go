package dataset

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cast"

	"github.com/sartorproj/epitrend/timeseries"
)

// document is the date-keyed layout of a region file:
//
//	{"Name": "King", "Confirmed": {"03/01/2020": 1}, "Death": {"03/01/2020": 0}}
type document struct {
	Name      string                 `json:"Name"`
	Confirmed map[string]interface{} `json:"Confirmed"`
	Death     map[string]interface{} `json:"Death"`
	Recovered map[string]interface{} `json:"Recovered"`
}

// ParseJSON reads a date-keyed region document. Values may be numbers or
// numeric strings; null values are skipped. The name in the document, when
// present, takes precedence over name.
func ParseJSON(name string, r io.Reader) (*RegionData, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding region %q: %w", name, err)
	}
	if doc.Name != "" {
		name = doc.Name
	}

	data := &RegionData{Name: name}

	var err error
	if data.Confirmed, err = datePairs("confirmed", doc.Confirmed); err != nil {
		return nil, err
	}
	if data.Deaths, err = datePairs("death", doc.Death); err != nil {
		return nil, err
	}
	if data.Recovered, err = datePairs("recovered", doc.Recovered); err != nil {
		return nil, err
	}

	if len(data.Confirmed) == 0 {
		return nil, ErrNoData.New(name)
	}
	return data, nil
}

func datePairs(kind string, raw map[string]interface{}) ([]timeseries.RawPair, error) {
	values := make(map[string]float64, len(raw))
	for day, v := range raw {
		if v == nil {
			continue
		}
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return nil, ErrInvalidValue.Wrap(err, kind, v, day)
		}
		values[day] = f
	}
	return timeseries.PairsFromDateMap(values)
}
