//go:build darwin && cgo

package darwin

import "github.com/yhao3/hinto/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		if err := CheckAccessibilityPermission(); err != nil {
			return nil, err
		}
		return &platform.Provider{
			AX:    NewService(),
			Input: NewInputter(),
		}, nil
	}
	platform.RequestPermissionsFunc = RequestAccessibilityPermission
}
