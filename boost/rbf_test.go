
//此源码被清华学神尹成大魔王专业翻译分析并修改
//尹成QQ77025077
//尹成微信18510341407
//尹成所在QQ群721929980
//尹成邮箱 yinc13@mails.tsinghua.edu.cn
//尹成毕业于清华大学,微软区块链领域全球最有价值专家
//https://mvp.microsoft.com/zh-cn/PublicProfile/4033620
//版权所有（c）2016 BTCSuite开发者
//此源代码的使用由ISC控制
//可以在许可文件中找到的许可证。

package boost_test

import (
	"testing"

	"github.com/btcsuite/feebump/boost"
	"github.com/btcsuite/feebump/rawtx"
)

//parentTx有两个输出：100000聪支付到p2pkh和50000聪支付到p2sh。
const (
	parentTx = "0200000001169e1e83e930853391bc6f35f605c6754cfead57cf838763" +
		"9d3b4096c54f18f4010000004847000102030405060708090a0b0c0d0e0f1011" +
		"12131415161718191a1b1c1d1e1f202122232425262728292a2b2c2d2e2f3031" +
		"32333435363738393a3b3c3d3e3f40414243444546fdffffff02a08601000000" +
		"00001976a914111111111111111111111111111111111111111188ac50c30000" +
		"0000000017a91422222222222222222222222222222222222222228700000000"
	parentTxID = "2890dc94fa921ea3d9df0bce31004b19284c2bac167ffc211567ca5c19ee3931"

	p2pkhDest   = "12ZEw5Hcv1hTb6YUQJ69y1V7uhcoDz92PH"
	p2pkhScript = "76a914111111111111111111111111111111111111111188ac"
)

func loadParent(t *testing.T, fee int64) *rawtx.Transaction {
	t.Helper()
	tx, err := rawtx.DeserializeHex(parentTx)
	if err != nil {
		t.Fatalf("unable to decode parent: %v", err)
	}
	tx.Fee = fee
	return tx
}

func TestApplyFeeDelta(t *testing.T) {
	tests := []struct {
		name      string
		policy    boost.Policy
		index     int
		delta     int64
		wantValue int64
		wantFee   int64
		wantCode  boost.ErrorCode
		wantErr   bool
	}{
		{
			name:      "increase fee",
			index:     0,
			delta:     500,
			wantValue: 99500,
			wantFee:   1500,
		},
		{
			name:      "decrease fee",
			index:     0,
			delta:     -500,
			wantValue: 100500,
			wantFee:   500,
		},
		{
			name:      "zero delta",
			index:     1,
			wantValue: 50000,
			wantFee:   1000,
		},
		{
			name:      "leave one satoshi",
			index:     0,
			delta:     99999,
			wantValue: 1,
			wantFee:   100999,
		},
		{
			name:      "drain output",
			index:     0,
			delta:     100000,
			wantValue: 100000,
			wantFee:   1000,
			wantCode:  boost.ErrInsufficientOutputValue,
			wantErr:   true,
		},
		{
			name:      "overdraw output",
			index:     1,
			delta:     60000,
			wantValue: 50000,
			wantFee:   1000,
			wantCode:  boost.ErrInsufficientOutputValue,
			wantErr:   true,
		},
		{
			name:      "negative fee",
			index:     0,
			delta:     -1001,
			wantValue: 100000,
			wantFee:   1000,
			wantCode:  boost.ErrInput,
			wantErr:   true,
		},
		{
			name:      "index out of range",
			index:     2,
			delta:     1,
			wantValue: 100000,
			wantFee:   1000,
			wantCode:  boost.ErrInput,
			wantErr:   true,
		},
		{
			name:      "negative index",
			index:     -1,
			delta:     1,
			wantValue: 100000,
			wantFee:   1000,
			wantCode:  boost.ErrInput,
			wantErr:   true,
		},
		{
			name:      "dust under relay policy",
			policy:    boost.Policy{RelayFeePerKb: boost.DefaultRelayFeePerKb},
			index:     0,
			delta:     100000 - 545,
			wantValue: 100000,
			wantFee:   1000,
			wantCode:  boost.ErrInsufficientOutputValue,
			wantErr:   true,
		},
		{
			name:      "at dust threshold",
			policy:    boost.Policy{RelayFeePerKb: boost.DefaultRelayFeePerKb},
			index:     0,
			delta:     100000 - 546,
			wantValue: 546,
			wantFee:   100454,
		},
	}

	for _, test := range tests {
		tx := loadParent(t, 1000)
		total := tx.TotalInputAmount()

		err := test.policy.ApplyFeeDelta(tx, test.index, test.delta)
		if (err != nil) != test.wantErr {
			t.Errorf("%s: got error %v, want error %v", test.name, err,
				test.wantErr)
			continue
		}
		if err != nil && !boost.IsError(err, test.wantCode) {
			t.Errorf("%s: got error %v, want code %v", test.name, err,
				test.wantCode)
		}

		idx := test.index
		if idx < 0 || idx >= len(tx.Outputs) {
			idx = 0
		}
		if v := tx.Outputs[idx].Value; v != test.wantValue {
			t.Errorf("%s: got output value %d want %d", test.name, v,
				test.wantValue)
		}
		if tx.Fee != test.wantFee {
			t.Errorf("%s: got fee %d want %d", test.name, tx.Fee,
				test.wantFee)
		}
		if tx.TotalInputAmount() != total {
			t.Errorf("%s: value plus fee changed from %d to %d",
				test.name, total, tx.TotalInputAmount())
		}
	}
}

func TestApplyFeeDeltaKeepsID(t *testing.T) {
	tx := loadParent(t, 1000)
	if err := boost.DefaultPolicy.ApplyFeeDelta(tx, 0, 500); err != nil {
		t.Fatal(err)
	}
	if tx.TxID() != parentTxID || tx.Size() != 189 {
		t.Errorf("got id %s size %d", tx.TxID(), tx.Size())
	}
	if tx.SerializeSize(false) != tx.Size() {
		t.Errorf("serialize size %d differs from decoded size %d",
			tx.SerializeSize(false), tx.Size())
	}
}

func TestApplyFeeDeltaNilTransaction(t *testing.T) {
	err := boost.DefaultPolicy.ApplyFeeDelta(nil, 0, 1)
	if !boost.IsError(err, boost.ErrInput) {
		t.Errorf("got error %v", err)
	}
}

func TestSetFee(t *testing.T) {
	tests := []struct {
		fee       int64
		wantValue int64
		wantErr   bool
	}{
		0: {fee: 5000, wantValue: 96000},
		1: {fee: 1000, wantValue: 100000},
		2: {fee: 0, wantValue: 101000},
		3: {fee: 101000, wantValue: 100000, wantErr: true},
		4: {fee: -1, wantValue: 100000, wantErr: true},
	}
	for i, test := range tests {
		tx := loadParent(t, 1000)
		err := boost.DefaultPolicy.SetFee(tx, 0, test.fee)
		if (err != nil) != test.wantErr {
			t.Errorf("SetFee #%d: got error %v, want error %v", i, err,
				test.wantErr)
			continue
		}
		if tx.Outputs[0].Value != test.wantValue {
			t.Errorf("SetFee #%d: got value %d want %d", i,
				tx.Outputs[0].Value, test.wantValue)
		}
		if err == nil && tx.Fee != test.fee {
			t.Errorf("SetFee #%d: got fee %d want %d", i, tx.Fee, test.fee)
		}
	}
}
