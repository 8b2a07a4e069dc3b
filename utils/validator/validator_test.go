package validatorx

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ShohjahonSohibov/Aberno/model"
)

type statusReq struct {
	Lead string `validate:"omitempty,lead_status"`
	Post string `validate:"omitempty,post_status"`
	Name string `validate:"required"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		req     interface{}
		wantErr bool
	}{
		{name: "valid", req: &statusReq{Lead: "called", Post: "draft", Name: "x"}},
		{name: "empty statuses allowed", req: &statusReq{Name: "x"}},
		{name: "bad lead status", req: &statusReq{Lead: "lost", Name: "x"}, wantErr: true},
		{name: "bad post status", req: &statusReq{Post: "archived", Name: "x"}, wantErr: true},
		{name: "missing name", req: &statusReq{}, wantErr: true},
		{
			name: "register password at bcrypt limit",
			req:  &model.RegisterRequest{Email: "a@x.com", Password: strings.Repeat("a", 72)},
		},
		{
			name:    "register password over bcrypt limit",
			req:     &model.RegisterRequest{Email: "a@x.com", Password: strings.Repeat("a", 73)},
			wantErr: true,
		},
		{
			name:    "admin password over bcrypt limit",
			req:     &model.CreateAdminRequest{Username: "root", Password: strings.Repeat("a", 73)},
			wantErr: true,
		},
		{
			name:    "user update password over bcrypt limit",
			req:     &model.UpdateUserRequest{Password: strings.Repeat("a", 73)},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.req)
			assert.Equal(t, tt.wantErr, err != nil, "err = %v", err)
		})
	}
}

func TestValidateStruct_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- ValidateStruct(&statusReq{Lead: "called", Name: "x"})
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}
}
