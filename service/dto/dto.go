package dto

//Credentials is a login payload; nil fields were absent or null in the request
type Credentials struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}
