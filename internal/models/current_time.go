package models

import "time"

// CurrentTimeModel carries the server clock in readable and epoch-millis form.
type CurrentTimeModel struct {
	ReadableTime string `json:"readableTime"`
	Time         int64  `json:"time"`
}

// CurrentTimeData is the entry payload for the current-time endpoint.
type CurrentTimeData struct {
	Entry      CurrentTimeModel `json:"entry"`
	References ReferencesModel  `json:"references"`
}

// NewCurrentTimeData builds a CurrentTimeData for the given instant.
func NewCurrentTimeData(t time.Time) CurrentTimeData {
	timeMillis := t.UnixNano() / int64(time.Millisecond)

	return CurrentTimeData{
		Entry: CurrentTimeModel{
			ReadableTime: t.Format(time.RFC3339),
			Time:         timeMillis,
		},
		References: NewEmptyReferences(),
	}
}
