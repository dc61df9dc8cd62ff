package model

type Account struct {
	AccountId int    `json:"accountId" storm:"id,increment"`
	Username  string `json:"username" storm:"unique"`
	Password  string `json:"password"`
}
