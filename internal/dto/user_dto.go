package dto

// UserListQuery captures the list-page filters.
type UserListQuery struct {
	UserType  string
	Suspended *bool
	Search    string
	Limit     int
	Offset    int
}
