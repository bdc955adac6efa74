package ethereum

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
)

// revertReason extracts a human readable revert reason from an RPC error.
// ok is false when err does not describe an EVM revert.
func revertReason(err error, abis []*abi.ABI) (reason string, ok bool) {
	if err == nil {
		return "", false
	}

	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		if raw, decoded := revertData(dataErr.ErrorData()); decoded {
			return decodeRevert(raw, abis), true
		}
	}

	msg := err.Error()
	if idx := strings.Index(msg, "execution reverted"); idx >= 0 {
		rest := strings.TrimPrefix(msg[idx+len("execution reverted"):], ":")
		return strings.TrimSpace(rest), true
	}
	return "", false
}

func revertData(data interface{}) ([]byte, bool) {
	switch v := data.(type) {
	case string:
		raw, err := hexutil.Decode(v)
		if err != nil {
			return nil, false
		}
		return raw, true
	case []byte:
		return v, true
	case hexutil.Bytes:
		return v, true
	default:
		return nil, false
	}
}

// decodeRevert decodes Error(string), Panic(uint256) and custom errors
// declared in abis.
func decodeRevert(raw []byte, abis []*abi.ABI) string {
	if len(raw) == 0 {
		return ""
	}
	if reason, err := abi.UnpackRevert(raw); err == nil {
		return reason
	}
	if len(raw) < 4 {
		return hexutil.Encode(raw)
	}

	var id [4]byte
	copy(id[:], raw[:4])
	for _, a := range abis {
		if a == nil {
			continue
		}
		abiErr, err := a.ErrorByID(id)
		if err != nil {
			continue
		}
		return formatCustomError(abiErr, raw)
	}
	return "custom error " + hexutil.Encode(id[:])
}

func formatCustomError(abiErr *abi.Error, raw []byte) string {
	if len(abiErr.Inputs) == 0 {
		return abiErr.Name
	}
	unpacked, err := abiErr.Unpack(raw)
	if err != nil {
		return abiErr.Name
	}
	values, ok := unpacked.([]interface{})
	if !ok {
		return fmt.Sprintf("%s(%v)", abiErr.Name, unpacked)
	}

	args := make([]string, len(values))
	for i, v := range values {
		args[i] = fmt.Sprint(v)
	}
	return abiErr.Name + "(" + strings.Join(args, ", ") + ")"
}
