package domain

import "time"

type JobAssignment struct {
	ID        int64     `json:"id"`
	PersonID  int64     `json:"personID"`
	JobName   string    `json:"jobName"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	CreatedAt time.Time `json:"createdAt"`
}

type JobName struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
