package acl

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLevelJSON(t *testing.T) {
	t.Run("numeric", func(t *testing.T) {
		var l Level
		require.NoError(t, json.Unmarshal([]byte(`5`), &l))
		assert.Equal(t, Update, l)
	})

	t.Run("named", func(t *testing.T) {
		var l Level
		require.NoError(t, json.Unmarshal([]byte(`"share"`), &l))
		assert.Equal(t, Share, l)
	})

	t.Run("out of range", func(t *testing.T) {
		var l Level
		assert.Error(t, json.Unmarshal([]byte(`9`), &l))
		assert.Error(t, json.Unmarshal([]byte(`"owner"`), &l))
	})
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("Delete")
	require.NoError(t, err)
	assert.Equal(t, Delete, l)

	l, err = ParseLevel("2")
	require.NoError(t, err)
	assert.Equal(t, Connected, l)

	_, err = ParseLevel("-1")
	assert.Error(t, err)
}

func TestEntryValidate(t *testing.T) {
	assert.NoError(t, Entry{Type: EntryOwner, Allow: Delete}.Validate())
	assert.NoError(t, Entry{Type: EntryRole, Target: "support", Allow: Public}.Validate())
	assert.NoError(t, Entry{Type: EntryAccount, Target: uuid.NewString(), Allow: Share}.Validate())
	assert.Error(t, Entry{Type: EntryAccount, Target: "bob", Allow: Share}.Validate())
	assert.Error(t, Entry{Type: EntryOwner, Target: "x", Allow: Share}.Validate())
	assert.Error(t, Entry{Type: EntryAny, Allow: None}.Validate())
	assert.Error(t, Entry{Type: "group", Allow: Public}.Validate())
}

func TestResolve(t *testing.T) {
	owner := Principal{AccountID: uuid.New(), Roles: []string{RoleSupport}}
	other := Principal{AccountID: uuid.New()}
	admin := Principal{AccountID: uuid.New(), Roles: []string{RoleAdministrator}}
	subject := Subject{OwnerID: owner.AccountID}

	defaults := []Entry{{Type: EntryOwner, Allow: Delete}, {Type: EntryAny, Allow: Public}}
	instance := []Entry{
		{Type: EntryAccount, Target: other.AccountID.String(), Allow: Update},
		{Type: EntryRole, Target: RoleSupport, Allow: Share},
	}

	t.Run("owner gets owner level", func(t *testing.T) {
		assert.Equal(t, Delete, Resolve(owner, subject, defaults, instance))
	})

	t.Run("highest matching entry wins", func(t *testing.T) {
		assert.Equal(t, Update, Resolve(other, subject, defaults, instance))
	})

	t.Run("any entry", func(t *testing.T) {
		stranger := Principal{AccountID: uuid.New()}
		assert.Equal(t, Public, Resolve(stranger, subject, defaults, instance))
	})

	t.Run("no entries means none", func(t *testing.T) {
		assert.Equal(t, None, Resolve(other, subject))
	})

	t.Run("administrators get at least delete", func(t *testing.T) {
		assert.Equal(t, Delete, Resolve(admin, subject))
		assert.Equal(t, Max, Resolve(admin, subject, []Entry{{Type: EntryAny, Allow: Max}}))
	})

	t.Run("anonymous matches nothing", func(t *testing.T) {
		anon := Principal{Anonymous: true}
		assert.Equal(t, None, Resolve(anon, subject, defaults))
	})
}

func TestCanCreate(t *testing.T) {
	dev := Principal{AccountID: uuid.New(), Roles: []string{RoleDeveloper}}
	plain := Principal{AccountID: uuid.New()}

	assert.True(t, CanCreate(plain, nil))
	assert.False(t, CanCreate(Principal{Anonymous: true}, nil))

	createACL := []Entry{{Type: EntryRole, Target: RoleDeveloper, Allow: Public}}
	assert.True(t, CanCreate(dev, createACL))
	assert.False(t, CanCreate(plain, createACL))
	assert.True(t, CanCreate(Principal{AccountID: uuid.New(), Roles: []string{RoleAdministrator}}, createACL))
}

func TestLevelYAML(t *testing.T) {
	var entries []Entry
	err := yaml.Unmarshal([]byte("- type: owner\n  allow: delete\n- type: any\n  allow: 1\n"), &entries)
	require.NoError(t, err)
	assert.Equal(t, Delete, entries[0].Allow)
	assert.Equal(t, Public, entries[1].Allow)

	err = yaml.Unmarshal([]byte("- type: any\n  allow: everything\n"), &entries)
	assert.Error(t, err)
}
