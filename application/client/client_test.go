package client_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	appclient "github.com/ShohjahonSohibov/Aberno/application/client"
	"github.com/ShohjahonSohibov/Aberno/constant"
	clientmocks "github.com/ShohjahonSohibov/Aberno/mocks/repository/client"
	"github.com/ShohjahonSohibov/Aberno/model"
	cerr "github.com/ShohjahonSohibov/Aberno/utils/errors"
)

func TestClientApp_CreateClient(t *testing.T) {
	repo := clientmocks.NewClientRepository(t)
	name := model.LocalizedText{En: "Acme"}

	repo.On("Create", mock.Anything, &model.Client{Name: name, Image: "/a.png", BrandID: "b-1", IsActive: true}).
		Return(&model.Client{ID: "cl-1"}, nil).Once()

	got, err := appclient.NewClientApp(repo).CreateClient(context.Background(),
		&model.ClientRequest{Name: name, Image: "/a.png", Brand: "b-1"})
	require.NoError(t, err)
	assert.Equal(t, "cl-1", got.ID)
}

func TestClientApp_DeleteClient(t *testing.T) {
	tests := []struct {
		name     string
		mockCall func(repo *clientmocks.ClientRepository)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success",
			mockCall: func(repo *clientmocks.ClientRepository) {
				repo.On("GetByID", mock.Anything, "cl-1").Return(&model.Client{ID: "cl-1"}, nil).Once()
				repo.On("Delete", mock.Anything, "cl-1").Return(nil).Once()
			},
		},
		{
			name: "error: not found",
			mockCall: func(repo *clientmocks.ClientRepository) {
				repo.On("GetByID", mock.Anything, "cl-1").Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: lookup fails",
			mockCall: func(repo *clientmocks.ClientRepository) {
				repo.On("GetByID", mock.Anything, "cl-1").Return(nil, errors.New("db down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := clientmocks.NewClientRepository(t)
			tt.mockCall(repo)

			err := appclient.NewClientApp(repo).DeleteClient(context.Background(), "cl-1")
			if tt.wantErr {
				assert.True(t, cerr.Is(err, tt.errCode), "got %v", err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
