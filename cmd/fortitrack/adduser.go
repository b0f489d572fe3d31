package main

import (
	"context"

	"github.com/voidshard/fortitrack/pkg/api"
	"github.com/voidshard/fortitrack/pkg/notify"
	"github.com/voidshard/fortitrack/pkg/structs"
)

const (
	docAddUser = `Provision a user (ie. the first admin)`
)

type optsAddUser struct {
	optsGeneral
	optsDatabase

	ID          string `long:"id" required:"true" description:"User ID as issued by the identity provider"`
	Email       string `long:"email" description:"Email address"`
	DisplayName string `long:"name" description:"Display name"`
	Role        string `long:"role" choice:"admin" choice:"dispatcher" choice:"technician" default:"technician" description:"Role"`
	Inactive    bool   `long:"inactive" description:"Create the user deactivated"`
}

func (c *optsAddUser) Execute(args []string) error {
	log := c.logger()

	db, err := c.database()
	if err != nil {
		return err
	}

	svc, err := api.NewAPI(db, nil, notify.NewLog(log), log, api.OptionsDefault())
	if err != nil {
		return err
	}
	defer svc.Close()

	u := &structs.User{
		ID:          c.ID,
		Email:       c.Email,
		DisplayName: c.DisplayName,
		Role:        structs.ToRole(c.Role),
	}
	if c.Inactive {
		u.Status = structs.UserInactive
	}

	_, err = svc.AddUser(context.Background(), u)
	return err
}
