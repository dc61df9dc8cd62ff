package model

type Message struct {
	MessageId       int    `json:"messageId" storm:"id,increment"`
	PostedBy        int    `json:"postedBy" storm:"index"`
	MessageText     string `json:"messageText"`
	TimePostedEpoch int64  `json:"timePostedEpoch"`
}
