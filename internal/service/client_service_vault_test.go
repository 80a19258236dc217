package service_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/rsd-tui/internal/crypto"
	"github.com/MKhiriev/rsd-tui/internal/logger"
	"github.com/MKhiriev/rsd-tui/internal/mock"
	"github.com/MKhiriev/rsd-tui/internal/service"
	"github.com/MKhiriev/rsd-tui/internal/store"
	"github.com/MKhiriev/rsd-tui/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testCredentials = []models.Credential{
	{Name: "github", Secret: "gh-s3cret"},
	{Name: "mail", Secret: "m@il"},
	{Name: "bank", Secret: ""},
}

// sealTestVault writes testCredentials to a temp vault under passphrase
// "correct" and returns the storage pointing at it.
func sealTestVault(t *testing.T, c crypto.Cipher) store.VaultStorage {
	t.Helper()
	storage := store.NewVaultFileStorage(filepath.Join(t.TempDir(), "psd.bin"), logger.Nop())
	sealer := service.NewVaultSealer(storage, logger.Nop())
	require.NoError(t, sealer.Seal(context.Background(), "correct", testCredentials, c))
	return storage
}

// ── Load: real file ──────────────────────────────────────────────────────────

func TestVaultLoader_Load_Keychain(t *testing.T) {
	storage := sealTestVault(t, crypto.NewKeychainCipher())
	loader := service.NewVaultLoader(storage, logger.Nop())

	t.Run("correct passphrase", func(t *testing.T) {
		got, err := loader.Load(context.Background(), "correct")
		require.NoError(t, err)
		assert.Equal(t, testCredentials, got)
	})

	t.Run("wrong passphrase", func(t *testing.T) {
		got, err := loader.Load(context.Background(), "wrong")
		assert.Nil(t, got)
		assert.ErrorIs(t, err, service.ErrVaultDecryption)
		assert.ErrorIs(t, err, crypto.ErrDecryption)
		assert.NotErrorIs(t, err, service.ErrVaultStorage)
		assert.NotErrorIs(t, err, service.ErrVaultParse)
	})

	t.Run("empty passphrase", func(t *testing.T) {
		_, err := loader.Load(context.Background(), "")
		assert.ErrorIs(t, err, service.ErrVaultDecryption)
	})
}

func TestVaultLoader_Load_AgeIsDetected(t *testing.T) {
	storage := sealTestVault(t, crypto.NewAgeCipher())
	loader := service.NewVaultLoader(storage, logger.Nop())

	got, err := loader.Load(context.Background(), "correct")
	require.NoError(t, err)
	assert.Equal(t, testCredentials, got)
}

func TestVaultLoader_Load_MissingFile(t *testing.T) {
	storage := store.NewVaultFileStorage(filepath.Join(t.TempDir(), "absent.bin"), logger.Nop())
	loader := service.NewVaultLoader(storage, logger.Nop())

	got, err := loader.Load(context.Background(), "correct")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, service.ErrVaultStorage)
	assert.ErrorIs(t, err, store.ErrVaultNotFound)
}

func TestVaultLoader_Load_NotJSON(t *testing.T) {
	c := crypto.NewKeychainCipher()
	blob, err := c.Seal("correct", []byte("definitely not json"))
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	storage := mock.NewMockVaultStorage(ctrl)
	storage.EXPECT().ReadVault(gomock.Any()).Return(blob, nil)

	loader := service.NewVaultLoader(storage, logger.Nop())
	_, err = loader.Load(context.Background(), "correct")
	assert.ErrorIs(t, err, service.ErrVaultParse)
	assert.NotErrorIs(t, err, service.ErrVaultDecryption)
}

// ── Load: mocked storage ─────────────────────────────────────────────────────

func TestVaultLoader_Load_StorageErrors(t *testing.T) {
	tests := []struct {
		name    string
		readErr error
	}{
		{name: "not found", readErr: store.ErrVaultNotFound},
		{name: "read failure", readErr: store.ErrVaultRead},
		{name: "home unresolved", readErr: store.ErrHomeDirUnresolved},
		{name: "canceled", readErr: context.Canceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			storage := mock.NewMockVaultStorage(ctrl)
			storage.EXPECT().ReadVault(gomock.Any()).Return(nil, tt.readErr)

			loader := service.NewVaultLoader(storage, logger.Nop())
			got, err := loader.Load(context.Background(), "pw")

			assert.Nil(t, got)
			assert.ErrorIs(t, err, service.ErrVaultStorage)
			assert.ErrorIs(t, err, tt.readErr)
		})
	}
}

func TestVaultLoader_Load_GarbageBlob(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockVaultStorage(ctrl)
	storage.EXPECT().ReadVault(gomock.Any()).Return([]byte("%%% not a vault %%%"), nil)

	loader := service.NewVaultLoader(storage, logger.Nop())
	_, err := loader.Load(context.Background(), "pw")
	assert.ErrorIs(t, err, service.ErrVaultDecryption)
}

// ── Seal ─────────────────────────────────────────────────────────────────────

func TestVaultSealer_Seal_EmptyPassphrase(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockVaultStorage(ctrl)
	c := mock.NewMockCipher(ctrl)

	sealer := service.NewVaultSealer(storage, logger.Nop())
	err := sealer.Seal(context.Background(), "", testCredentials, c)
	assert.ErrorIs(t, err, service.ErrEmptyPassphrase)
}

func TestVaultSealer_Seal_WritesCipherOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockVaultStorage(ctrl)
	c := mock.NewMockCipher(ctrl)

	gomock.InOrder(
		c.EXPECT().Seal("pw", gomock.Any()).DoAndReturn(func(_ string, plaintext []byte) ([]byte, error) {
			assert.JSONEq(t,
				`[{"Name":"github","Password":"gh-s3cret"},{"Name":"mail","Password":"m@il"},{"Name":"bank","Password":""}]`,
				string(plaintext))
			return []byte("sealed-blob"), nil
		}),
		storage.EXPECT().WriteVault(gomock.Any(), []byte("sealed-blob")).Return(nil),
	)
	c.EXPECT().Name().Return("mock").AnyTimes()

	sealer := service.NewVaultSealer(storage, logger.Nop())
	require.NoError(t, sealer.Seal(context.Background(), "pw", testCredentials, c))
}

func TestVaultSealer_Seal_CipherError(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockVaultStorage(ctrl)
	c := mock.NewMockCipher(ctrl)

	sealErr := errors.New("entropy exhausted")
	c.EXPECT().Seal("pw", gomock.Any()).Return(nil, sealErr)
	c.EXPECT().Name().Return("mock").AnyTimes()

	sealer := service.NewVaultSealer(storage, logger.Nop())
	err := sealer.Seal(context.Background(), "pw", testCredentials, c)
	assert.ErrorIs(t, err, sealErr)
}

func TestVaultSealer_Seal_WriteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockVaultStorage(ctrl)
	c := mock.NewMockCipher(ctrl)

	c.EXPECT().Seal("pw", gomock.Any()).Return([]byte("blob"), nil)
	c.EXPECT().Name().Return("mock").AnyTimes()
	storage.EXPECT().WriteVault(gomock.Any(), []byte("blob")).Return(store.ErrVaultWrite)

	sealer := service.NewVaultSealer(storage, logger.Nop())
	err := sealer.Seal(context.Background(), "pw", testCredentials, c)
	assert.ErrorIs(t, err, service.ErrVaultStorage)
	assert.ErrorIs(t, err, store.ErrVaultWrite)
}

// ── ParseCredentials ─────────────────────────────────────────────────────────

func TestParseCredentials(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []models.Credential
		wantErr bool
	}{
		{
			name:  "ordered records",
			input: `[{"Name":"b","Password":"2"},{"Name":"a","Password":"1"}]`,
			want:  []models.Credential{{Name: "b", Secret: "2"}, {Name: "a", Secret: "1"}},
		},
		{
			name:  "empty list",
			input: ` [] `,
			want:  []models.Credential{},
		},
		{
			name:  "unknown keys ignored",
			input: `[{"Name":"a","Password":"1","Url":"https://example.com"}]`,
			want:  []models.Credential{{Name: "a", Secret: "1"}},
		},
		{
			name:  "duplicate names kept",
			input: `[{"Name":"a","Password":"1"},{"Name":"a","Password":"2"}]`,
			want:  []models.Credential{{Name: "a", Secret: "1"}, {Name: "a", Secret: "2"}},
		},
		{
			name:  "unicode secret",
			input: `[{"Name":"ключ","Password":"пароль🔑"}]`,
			want:  []models.Credential{{Name: "ключ", Secret: "пароль🔑"}},
		},
		{name: "object instead of array", input: `{"Name":"a","Password":"1"}`, wantErr: true},
		{name: "missing password", input: `[{"Name":"a"}]`, wantErr: true},
		{name: "missing name", input: `[{"Password":"1"}]`, wantErr: true},
		{name: "wrong type", input: `[{"Name":1,"Password":"1"}]`, wantErr: true},
		{name: "truncated", input: `[{"Name":"a","Pass`, wantErr: true},
		{name: "empty input", input: ``, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.ParseCredentials([]byte(tt.input))
			if tt.wantErr {
				assert.ErrorIs(t, err, service.ErrVaultParse)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCredentials_MissingFieldNamesRecord(t *testing.T) {
	_, err := service.ParseCredentials([]byte(`[{"Name":"a","Password":"1"},{"Name":"b"}]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record 1: missing field Password")
}
