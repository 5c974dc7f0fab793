package layout

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fwmaint/layoutkit/pkg/types"
)

func TestParseDelta(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int64
		wantErr bool
	}{
		{name: "Hex", in: "0x1000", want: 0x1000},
		{name: "Hex with plus sign", in: "+0x1000", want: 0x1000},
		{name: "Hex with minus sign", in: "-0x800", want: -0x800},
		{name: "Decimal", in: "4096", want: 4096},
		{name: "Decimal with plus sign", in: "+4096", want: 4096},
		{name: "Decimal with minus sign", in: "-4096", want: -4096},
		{name: "Zero", in: "0", want: 0},
		{name: "Hex zero", in: "0x0", want: 0},
		{name: "Uppercase hex prefix rejected", in: "0X1000", wantErr: true},
		{name: "Bare hex digits rejected", in: "f000", wantErr: true},
		{name: "Empty hex body", in: "0x", wantErr: true},
		{name: "Sign inside hex body", in: "0x-10", wantErr: true},
		{name: "Doubled sign", in: "--10", wantErr: true},
		{name: "Empty string", in: "", wantErr: true},
		{name: "Garbage", in: "lots", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDelta(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, types.ErrMalformedDelta)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
