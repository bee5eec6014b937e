package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/contactvault/internal/client/api"
)

func (a *App) AddContact(ctx context.Context) error {

	firstName, err := GetSimpleText(a.reader, "Enter first name", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	lastName, err := GetSimpleText(a.reader, "Enter last name", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	phone, err := GetSimpleText(a.reader, "Enter phone", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	contact, err := a.api.CreateContact(ctx, firstName, lastName, phone, email)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Created contact %s\n", contact.ID)
	return nil
}

func (a *App) ShowContact(ctx context.Context) error {

	id, err := GetSimpleText(a.reader, "Enter contact ID", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	contact, err := a.api.GetContact(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	printContact(a.out, contact)
	return nil
}

// EditContact prompts for each field; an empty answer keeps the stored value.
func (a *App) EditContact(ctx context.Context) error {

	id, err := GetSimpleText(a.reader, "Enter contact ID", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	patch := &api.ContactPatch{}
	prompts := []struct {
		label string
		dst   **string
	}{
		{"New first name (empty to keep)", &patch.FirstName},
		{"New last name (empty to keep)", &patch.LastName},
		{"New phone (empty to keep)", &patch.Phone},
		{"New email (empty to keep)", &patch.Email},
	}
	for _, p := range prompts {
		value, err := GetSimpleText(a.reader, p.label, a.out)
		if err != nil {
			fmt.Fprintln(a.out, err.Error())
			return err
		}
		if value != "" {
			v := value
			*p.dst = &v
		}
	}

	contact, err := a.api.UpdateContact(ctx, id, patch)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	printContact(a.out, contact)
	return nil
}

func printContact(w io.Writer, c *api.Contact) {
	fmt.Fprintf(w, "ID:         %s\nFirst name: %s\nLast name:  %s\nPhone:      %s\nEmail:      %s\n",
		c.ID, c.FirstName, c.LastName, c.Phone, c.Email)
}
