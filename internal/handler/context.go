package handler

type ContextKey string

var (
	PersonCtx        ContextKey = "person"
	JobAssignmentCtx ContextKey = "jobAssignment"
)
