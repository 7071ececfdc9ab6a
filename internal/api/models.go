package api

import (
	"github.com/phrazzld/kundli-api/internal/domain"
	"github.com/phrazzld/kundli-api/internal/domain/chart"
	"github.com/phrazzld/kundli-api/internal/domain/panchang"
	"github.com/phrazzld/kundli-api/internal/domain/rules"
	"github.com/phrazzld/kundli-api/internal/service"
)

// StatusSuccess is the status field of every successful response.
const StatusSuccess = "success"

// KundliRequest is the body accepted by every POST endpoint. Coordinates and
// offset are pointers so that 0 is accepted while absence is rejected.
type KundliRequest struct {
	Date   string   `json:"date"             validate:"required,datetime=2006-01-02"`
	Time   string   `json:"time"             validate:"required,datetime=15:04"`
	Lat    *float64 `json:"lat"              validate:"required,gte=-90,lte=90"`
	Lon    *float64 `json:"lon"              validate:"required,gte=-180,lte=180"`
	TZ     *float64 `json:"tz"               validate:"required,gte=-12,lte=14"`
	Name   string   `json:"name,omitempty"   validate:"max=100"`
	Gender string   `json:"gender,omitempty" validate:"max=20"`
}

// BirthInput converts a validated request.
func (r KundliRequest) BirthInput() domain.BirthInput {
	in := domain.BirthInput{
		Date:   r.Date,
		Time:   r.Time,
		Name:   r.Name,
		Gender: domain.Gender(r.Gender),
	}
	if r.Lat != nil {
		in.Latitude = *r.Lat
	}
	if r.Lon != nil {
		in.Longitude = *r.Lon
	}
	if r.TZ != nil {
		in.UTCOffset = *r.TZ
	}
	return in
}

// InputEcho repeats the request back to the caller.
type InputEcho struct {
	Date   string  `json:"date"`
	Time   string  `json:"time"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	TZ     float64 `json:"tz"`
	Name   string  `json:"name"`
	Gender string  `json:"gender"`
}

// PlanetResponse is one body's placement.
type PlanetResponse struct {
	Longitude          float64        `json:"longitude"`
	Degree             float64        `json:"degree"`
	Sign               string         `json:"sign"`
	SignNumber         int            `json:"sign_number"`
	NavamshaSign       string         `json:"navamsha_sign"`
	NavamshaSignNumber int            `json:"navamsha_sign_number"`
	House              int            `json:"house"`
	Strength           chart.Strength `json:"strength"`
	Aspects            []int          `json:"aspects"`
	Dispositor         chart.Body     `json:"dispositor"`
	DispositorRelation string         `json:"dispositor_relation"`
}

// LagnaResponse is the ascendant.
type LagnaResponse struct {
	Longitude  float64 `json:"longitude"`
	Degree     float64 `json:"degree"`
	Sign       string  `json:"sign"`
	SignNumber int     `json:"sign_number"`
}

// HouseResponse is one house, either a whole-sign house or a provider cusp.
type HouseResponse struct {
	HouseNumber int     `json:"house_number"`
	Longitude   float64 `json:"longitude"`
	Degree      float64 `json:"degree"`
	Sign        string  `json:"sign"`
	SignNumber  int     `json:"sign_number"`
	Nature      string  `json:"nature,omitempty"`
}

// PlanetsResponse is returned by /api/kundli/planets.
type PlanetsResponse struct {
	Status      string                    `json:"status"`
	ChartID     string                    `json:"chart_id"`
	Planets     map[string]PlanetResponse `json:"planets"`
	Unavailable []string                  `json:"unavailable,omitempty"`
	JulianDay   float64                   `json:"julian_day"`
}

// LagnaHousesResponse is returned by /api/kundli/lagna.
type LagnaHousesResponse struct {
	Status      string          `json:"status"`
	ChartID     string          `json:"chart_id"`
	Lagna       LagnaResponse   `json:"lagna"`
	Houses      []HouseResponse `json:"houses"`
	Cusps       []HouseResponse `json:"cusps"`
	HouseSystem string          `json:"house_system"`
	JulianDay   float64         `json:"julian_day"`
}

// BasicResponse is returned by /api/kundli/basic.
type BasicResponse struct {
	Status      string                    `json:"status"`
	ChartID     string                    `json:"chart_id"`
	Input       InputEcho                 `json:"input"`
	Planets     map[string]PlanetResponse `json:"planets"`
	Unavailable []string                  `json:"unavailable,omitempty"`
	Lagna       LagnaResponse             `json:"lagna"`
	Houses      []HouseResponse           `json:"houses"`
	JulianDay   float64                   `json:"julian_day"`
}

// ComprehensiveResponse is returned by /api/kundli/comprehensive.
type ComprehensiveResponse struct {
	BasicResponse
	Tithi     int              `json:"tithi,omitempty"`
	Nakshatra int              `json:"nakshatra,omitempty"`
	Yogas     []rules.Finding  `json:"yogas"`
	Doshas    []rules.Finding  `json:"doshas"`
	Details   panchang.Details `json:"comprehensive_details"`
}

// FindingsResponse is returned by /api/kundli/yogas and /api/kundli/doshas.
type FindingsResponse struct {
	Status   string          `json:"status"`
	ChartID  string          `json:"chart_id"`
	Count    int             `json:"count"`
	Findings []rules.Finding `json:"findings"`
}

// EndpointDoc describes one endpoint in the docs response.
type EndpointDoc struct {
	Method         string   `json:"method"`
	Description    string   `json:"description"`
	RequiredFields []string `json:"required_fields,omitempty"`
	OptionalFields []string `json:"optional_fields,omitempty"`
}

// DocsResponse is returned by /api/kundli/docs.
type DocsResponse struct {
	APIName     string                 `json:"api_name"`
	Version     string                 `json:"version"`
	Description string                 `json:"description"`
	Endpoints   map[string]EndpointDoc `json:"endpoints"`
	DateFormat  string                 `json:"date_format"`
	TimeFormat  string                 `json:"time_format"`
	Coordinates string                 `json:"coordinates"`
	Timezone    string                 `json:"timezone"`
}

func echo(in domain.BirthInput) InputEcho {
	return InputEcho{
		Date:   in.Date,
		Time:   in.Time,
		Lat:    in.Latitude,
		Lon:    in.Longitude,
		TZ:     in.UTCOffset,
		Name:   in.Name,
		Gender: string(in.Gender),
	}
}

func planetsDTO(c *chart.Chart) map[string]PlanetResponse {
	tables := c.Tables()
	out := make(map[string]PlanetResponse, c.Len())
	for _, bp := range c.Bodies() {
		// The dispositor is the lord of the sign the body occupies.
		lord := tables.Lord(bp.Sign)
		out[string(bp.Body)] = PlanetResponse{
			Longitude:          bp.Longitude,
			Degree:             bp.Degree,
			Sign:               bp.Sign.Name(),
			SignNumber:         int(bp.Sign),
			NavamshaSign:       bp.Navamsha.Name(),
			NavamshaSignNumber: int(bp.Navamsha),
			House:              bp.House,
			Strength:           bp.Strength,
			Aspects:            chart.AspectedHouses(bp.Body, bp.House),
			Dispositor:         lord,
			DispositorRelation: tables.Relation(bp.Body, lord),
		}
	}
	return out
}

func lagnaDTO(p chart.Position) LagnaResponse {
	return LagnaResponse{
		Longitude:  p.Longitude,
		Degree:     p.Degree,
		Sign:       p.Sign.Name(),
		SignNumber: int(p.Sign),
	}
}

func housesDTO(c *chart.Chart) []HouseResponse {
	houses := c.Houses()
	out := make([]HouseResponse, 0, len(houses))
	for _, h := range houses {
		out = append(out, HouseResponse{
			HouseNumber: h.Number,
			Longitude:   h.StartLongitude,
			Sign:        h.Sign.Name(),
			SignNumber:  int(h.Sign),
			Nature:      chart.HouseNature(h.Number),
		})
	}
	return out
}

func cuspsDTO(cusps [12]float64) []HouseResponse {
	out := make([]HouseResponse, 0, len(cusps))
	for i, lon := range cusps {
		p := chart.Normalize(lon)
		out = append(out, HouseResponse{
			HouseNumber: i + 1,
			Longitude:   p.Longitude,
			Degree:      p.Degree,
			Sign:        p.Sign.Name(),
			SignNumber:  int(p.Sign),
		})
	}
	return out
}

func unavailable(missing []chart.Body) []string {
	if len(missing) == 0 {
		return nil
	}
	out := make([]string, len(missing))
	for i, b := range missing {
		out[i] = string(b)
	}
	return out
}

func basicDTO(k *service.Kundli) BasicResponse {
	return BasicResponse{
		Status:      StatusSuccess,
		ChartID:     k.ID.String(),
		Input:       echo(k.Input),
		Planets:     planetsDTO(k.Chart),
		Unavailable: unavailable(k.Missing),
		Lagna:       lagnaDTO(k.Chart.Ascendant()),
		Houses:      housesDTO(k.Chart),
		JulianDay:   k.JulianDay,
	}
}

// NewComprehensiveResponse shapes a fully generated kundli for the wire.
func NewComprehensiveResponse(k *service.Kundli) ComprehensiveResponse {
	resp := ComprehensiveResponse{
		BasicResponse: basicDTO(k),
		Yogas:         nonNil(k.Yogas),
		Doshas:        nonNil(k.Doshas),
		Details:       k.Details,
	}
	if tf, ok := k.Chart.TimeFacts(); ok {
		resp.Tithi = tf.Tithi
		resp.Nakshatra = tf.Nakshatra
	}
	return resp
}

func findingsDTO(k *service.Kundli, fs []rules.Finding) FindingsResponse {
	return FindingsResponse{
		Status:   StatusSuccess,
		ChartID:  k.ID.String(),
		Count:    len(fs),
		Findings: nonNil(fs),
	}
}

// nonNil keeps empty finding lists as [] rather than null on the wire.
func nonNil(fs []rules.Finding) []rules.Finding {
	if fs == nil {
		return []rules.Finding{}
	}
	return fs
}
