package model

import "time"

type TrainResponse struct {
	ID          int     `json:"id"`
	TrainName   string  `json:"trainName"`
	Source      string  `json:"source"`
	Destination string  `json:"destination"`
	Timing      string  `json:"timing"`
	Platform    *string `json:"platform"`
}

func NewTrainResponse(t Train) TrainResponse {
	return TrainResponse{
		ID:          t.ID,
		TrainName:   t.TrainName,
		Source:      t.Source,
		Destination: t.Destination,
		Timing:      t.Timing,
		Platform:    t.Platform,
	}
}

type CoachStatus struct {
	CoachID          int        `json:"coachId"`
	CoachName        string     `json:"coachName"`
	LatestStatus     string     `json:"latestStatus"`
	LastReportedAt   *time.Time `json:"lastReportedAt"`
	LastReporterName *string    `json:"lastReporterName"`
}

type CrowdReportResponse struct {
	ID           int       `json:"id"`
	CoachID      int       `json:"coachId"`
	ReporterName string    `json:"reporterName"`
	Status       string    `json:"status"`
	Timestamp    time.Time `json:"timestamp"`
}

func NewCrowdReportResponse(r CrowdReport) CrowdReportResponse {
	return CrowdReportResponse{
		ID:           r.ID,
		CoachID:      r.CoachID,
		ReporterName: r.ReporterName,
		Status:       string(r.Status),
		Timestamp:    r.Timestamp,
	}
}

type SOSReportResponse struct {
	ID           int       `json:"id"`
	ReporterName string    `json:"reporterName"`
	TrainID      *int      `json:"trainId"`
	CoachID      *int      `json:"coachId"`
	Latitude     *float64  `json:"latitude"`
	Longitude    *float64  `json:"longitude"`
	Message      *string   `json:"message"`
	Timestamp    time.Time `json:"timestamp"`
}

func NewSOSReportResponse(r SOSReport) SOSReportResponse {
	return SOSReportResponse{
		ID:           r.ID,
		ReporterName: r.ReporterName,
		TrainID:      r.TrainID,
		CoachID:      r.CoachID,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
		Message:      r.Message,
		Timestamp:    r.Timestamp,
	}
}
