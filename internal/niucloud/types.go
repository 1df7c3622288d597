package niucloud

// Vehicle is one entry of the vehicle list.
type Vehicle struct {
	Serial   string `json:"sn"`
	Name     string `json:"name"`
	Type     Value  `json:"type"`
	FrameNo  Value  `json:"frameNo"`
	EngineNo Value  `json:"engineNo"`
}

// VehiclePosition is the last known position of a vehicle.
// Coordinates are pointers because the server omits them when unknown.
type VehiclePosition struct {
	Latitude     *float64 `json:"lat"`
	Longitude    *float64 `json:"lng"`
	Timestamp    Millis   `json:"timestamp"`
	GPS          Value    `json:"gps"`
	GPSPrecision Value    `json:"gpsPrecision"`
}

// Compartment describes one battery compartment.
type Compartment struct {
	BMSID           Value          `json:"bmsId"`
	IsConnected     Value          `json:"isConnected"`
	BatteryCharging Value          `json:"batteryCharging"`
	ChargedTimes    Value          `json:"chargedTimes"`
	Temperature     Value          `json:"temperature"`
	GradeBattery    Value          `json:"gradeBattery"`
	HealthRecords   []HealthRecord `json:"healthRecords,omitempty"`
}

// HealthRecord is one entry of a battery health history.
type HealthRecord struct {
	Result      Value  `json:"result"`
	ChargeCount Value  `json:"chargeCount"`
	Color       Value  `json:"color"`
	Time        Millis `json:"time"`
	Name        Value  `json:"name"`
}

// Batteries holds the compartments of a vehicle; B is nil on single battery vehicles.
type Batteries struct {
	CompartmentA *Compartment `json:"compartmentA"`
	CompartmentB *Compartment `json:"compartmentB"`
}

// List returns the present compartments labelled "A" and "B".
func (b Batteries) List() []LabeledCompartment {
	var out []LabeledCompartment
	if b.CompartmentA != nil {
		out = append(out, LabeledCompartment{Label: "A", Compartment: b.CompartmentA})
	}
	if b.CompartmentB != nil {
		out = append(out, LabeledCompartment{Label: "B", Compartment: b.CompartmentB})
	}
	return out
}

// LabeledCompartment pairs a compartment with its label.
type LabeledCompartment struct {
	Label string
	*Compartment
}

// BatteryInfo is the battery state of a vehicle.
type BatteryInfo struct {
	Batteries        Batteries `json:"batteries"`
	EstimatedMileage Value     `json:"estimatedMileage"`
}

// BatteryHealth is the battery health history of a vehicle.
type BatteryHealth struct {
	Batteries       Batteries `json:"batteries"`
	IsDoubleBattery Value     `json:"isDoubleBattery"`
}

// ChartPoint is one sample of the battery chart: mileage in km and state of charge in percent.
type ChartPoint struct {
	Mileage Number `json:"m"`
	Battery Number `json:"b"`
}

// BatteryChart is one page of the battery chart.
type BatteryChart struct {
	Items1 []ChartPoint `json:"items1"`
	Items2 []ChartPoint `json:"items2"`
}

// ChartQuery selects a battery chart page.
type ChartQuery struct {
	Serial     string
	BMSID      int
	Page       int
	PageSize   string
	PageLength int
}

// TrackPoint is a coordinate pair as used in track summaries.
type TrackPoint struct {
	Latitude  Coordinate `json:"lat"`
	Longitude Coordinate `json:"lng"`
}

// Valid reports whether both coordinates are present.
func (p TrackPoint) Valid() bool {
	return p.Latitude.Valid && p.Longitude.Valid
}

// Track is the summary of one recorded ride.
type Track struct {
	TrackID    string     `json:"trackId"`
	Date       Value      `json:"date"`
	StartTime  Millis     `json:"startTime"`
	EndTime    Millis     `json:"endTime"`
	Distance   Value      `json:"distance"`
	AveSpeed   Value      `json:"avespeed"`
	RidingTime Value      `json:"ridingtime"`
	StartPoint TrackPoint `json:"startPoint"`
	LastPoint  TrackPoint `json:"lastPoint"`
}

// TrackList is one page of recorded rides.
type TrackList struct {
	Items []Track `json:"items"`
}

// TrackItem is a single GPS fix of a ride.
type TrackItem struct {
	Latitude  Coordinate `json:"lat"`
	Longitude Coordinate `json:"lng"`
	Date      Millis     `json:"date"`
}

// Valid reports whether both coordinates are present.
func (i TrackItem) Valid() bool {
	return i.Latitude.Valid && i.Longitude.Valid
}

// TrackDetail holds the fixes of a ride, newest first as delivered by the server.
type TrackDetail struct {
	TrackItems []TrackItem `json:"trackItems"`
}

// FirmwareVersion describes the installed and available firmware.
type FirmwareVersion struct {
	NowVersion        Value  `json:"nowVersion"`
	Version           Value  `json:"version"`
	HardVersion       Value  `json:"hardVersion"`
	SSProtocolVersion Value  `json:"ss_protocol_ver"`
	ByteSize          Value  `json:"byteSize"`
	Date              Millis `json:"date"`
	IsSupportUpdate   Value  `json:"isSupportUpdate"`
	NeedUpdate        Value  `json:"needUpdate"`
	OTADescribe       Value  `json:"otaDescribe"`
}

// UpdateInfo describes the state of the connectivity module.
type UpdateInfo struct {
	CSQ               Value  `json:"csq"`
	CentreCtrlBattery Value  `json:"centreCtrlBattery"`
	Date              Millis `json:"date"`
}

// LastTrack summarises the latest ride in the motor info.
type LastTrack struct {
	RidingTime Value  `json:"ridingTime"`
	Distance   Value  `json:"distance"`
	Time       Millis `json:"time"`
}

// MotorInfo is the live status of a vehicle.
type MotorInfo struct {
	IsCharging        Value      `json:"isCharging"`
	LockStatus        Value      `json:"lockStatus"`
	IsAccOn           Value      `json:"isAccOn"`
	IsFortificationOn Value      `json:"isFortificationOn"`
	IsConnected       Value      `json:"isConnected"`
	Position          TrackPoint `json:"postion"` // sic
	HDOP              Value      `json:"hdop"`
	Time              Millis     `json:"time"`
	Batteries         Batteries  `json:"batteries"`
	LeftTime          Value      `json:"leftTime"`
	EstimatedMileage  Value      `json:"estimatedMileage"`
	GPSTimestamp      Millis     `json:"gpsTimestamp"`
	InfoTimestamp     Millis     `json:"infoTimestamp"`
	NowSpeed          Value      `json:"nowSpeed"`
	BatteryDetail     Value      `json:"batteryDetail"`
	CentreCtrlBattery Value      `json:"centreCtrlBattery"`
	SSProtocolVersion Value      `json:"ss_protocol_ver"`
	SSOnlineStatus    Value      `json:"ss_online_sta"`
	GPS               Value      `json:"gps"`
	GSM               Value      `json:"gsm"`
	LastTrack         LastTrack  `json:"lastTrack"`
}
