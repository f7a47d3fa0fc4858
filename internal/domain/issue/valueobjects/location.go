package valueobjects

import "fmt"

// Location captures where an issue was reported. All fields are required;
// coordinates must be valid WGS84 values.
type Location struct {
	address        string
	latitude       float64
	longitude      float64
	city           string
	state          string
	pincode        string
	streetName     string
	nearbyLandmark string
}

func NewLocation(address string, latitude, longitude float64, city, state, pincode, streetName, nearbyLandmark string) (Location, error) {
	if len(address) == 0 {
		return Location{}, fmt.Errorf("address is required")
	}
	if latitude < -90 || latitude > 90 {
		return Location{}, fmt.Errorf("latitude out of range: %f", latitude)
	}
	if longitude < -180 || longitude > 180 {
		return Location{}, fmt.Errorf("longitude out of range: %f", longitude)
	}
	if len(city) == 0 {
		return Location{}, fmt.Errorf("city is required")
	}
	if len(state) == 0 {
		return Location{}, fmt.Errorf("state is required")
	}
	if len(pincode) != 6 {
		return Location{}, fmt.Errorf("pincode must be exactly 6 characters")
	}
	if len(streetName) == 0 || len(streetName) > 255 {
		return Location{}, fmt.Errorf("street name must be between 1 and 255 characters")
	}
	if len(nearbyLandmark) == 0 || len(nearbyLandmark) > 255 {
		return Location{}, fmt.Errorf("nearby landmark must be between 1 and 255 characters")
	}

	return Location{
		address:        address,
		latitude:       latitude,
		longitude:      longitude,
		city:           city,
		state:          state,
		pincode:        pincode,
		streetName:     streetName,
		nearbyLandmark: nearbyLandmark,
	}, nil
}

// ReconstructLocation rebuilds a location from storage without validation.
func ReconstructLocation(address string, latitude, longitude float64, city, state, pincode, streetName, nearbyLandmark string) Location {
	return Location{
		address:        address,
		latitude:       latitude,
		longitude:      longitude,
		city:           city,
		state:          state,
		pincode:        pincode,
		streetName:     streetName,
		nearbyLandmark: nearbyLandmark,
	}
}

func (l Location) Address() string        { return l.address }
func (l Location) Latitude() float64      { return l.latitude }
func (l Location) Longitude() float64     { return l.longitude }
func (l Location) City() string           { return l.city }
func (l Location) State() string          { return l.state }
func (l Location) Pincode() string        { return l.pincode }
func (l Location) StreetName() string     { return l.streetName }
func (l Location) NearbyLandmark() string { return l.nearbyLandmark }
