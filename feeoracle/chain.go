
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

package feeoracle

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/rpcclient"
	"github.com/btcsuite/btcutil"
)

//估计推荐费率时使用的确认目标（区块数）。
const (
	fastestTarget  = 2
	halfHourTarget = 3
	hourTarget     = 6
)

//rpcClient是ChainClient使用的rpcclient.Client方法的子集。
type rpcClient interface {
	RawRequest(method string, params []json.RawMessage) (json.RawMessage, error)
	GetRawTransaction(txHash *chainhash.Hash) (*btcutil.Tx, error)
	Shutdown()
}

//ChainClient通过与btcd或bitcoind的JSON-RPC连接回答费用查询。
//交易费用查询要求节点维护交易索引。
type ChainClient struct {
	client rpcClient
}

//NewChainClient创建到cfg描述的服务器的HTTP POST模式客户端。
//不会修改cfg。
func NewChainClient(cfg *rpcclient.ConnConfig) (*ChainClient, error) {
	configCopy := *cfg
	configCopy.HTTPPostMode = true
	client, err := rpcclient.New(&configCopy, nil)
	if err != nil {
		return nil, err
	}
	return &ChainClient{client: client}, nil
}

//Stop关闭底层RPC客户端。
func (c *ChainClient) Stop() {
	c.client.Shutdown()
}

//smartFeeResult是estimatesmartfee的回复。
type smartFeeResult struct {
	FeeRate *float64 `json:"feerate"`
	Errors  []string `json:"errors"`
	Blocks  int64    `json:"blocks"`
}

//RecommendedFees向节点请求三个确认目标的智能费用估计。
func (c *ChainClient) RecommendedFees(ctx context.Context) (*RecommendedFees, error) {
	var fees RecommendedFees
	targets := []struct {
		blocks int
		rate   *int64
	}{
		{fastestTarget, &fees.FastestFee},
		{halfHourTarget, &fees.HalfHourFee},
		{hourTarget, &fees.HourFee},
	}
	for _, target := range targets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rate, err := c.estimateSmartFee(target.blocks)
		if err != nil {
			return nil, err
		}
		*target.rate = rate
	}
	if err := fees.validate(); err != nil {
		return nil, err
	}
	log.Debugf("Node fee estimates: %d blocks %d, %d blocks %d, "+
		"%d blocks %d sat/B", fastestTarget, fees.FastestFee,
		halfHourTarget, fees.HalfHourFee, hourTarget, fees.HourFee)
	return &fees, nil
}

//estimateSmartFee返回以聪/字节为单位、向上取整的费率。
func (c *ChainClient) estimateSmartFee(blocks int) (int64, error) {
	param, err := json.Marshal(blocks)
	if err != nil {
		return 0, err
	}
	reply, err := c.client.RawRequest("estimatesmartfee",
		[]json.RawMessage{param})
	if err != nil {
		return 0, err
	}
	var result smartFeeResult
	if err := json.Unmarshal(reply, &result); err != nil {
		return 0, fmt.Errorf("malformed estimatesmartfee reply: %v", err)
	}
	if result.FeeRate == nil || *result.FeeRate <= 0 {
		if len(result.Errors) != 0 {
			return 0, fmt.Errorf("%v: %s", ErrNoFeeRate,
				strings.Join(result.Errors, "; "))
		}
		return 0, ErrNoFeeRate
	}

//费率单位是BTC/kB。
	perKb, err := btcutil.NewAmount(*result.FeeRate)
	if err != nil {
		return 0, err
	}
	return int64((perKb + 999) / 1000), nil
}

//TransactionFee将txid的费用计算为其花费的输出值之和减去其输出值之和。
func (c *ChainClient) TransactionFee(ctx context.Context, txid string) (int64, error) {
	hash, err := parseTxID(txid)
	if err != nil {
		return 0, err
	}
	tx, err := c.client.GetRawTransaction(hash)
	if err != nil {
		return 0, err
	}
	msgTx := tx.MsgTx()

	var in, out int64
	prevTxs := make(map[chainhash.Hash]*btcutil.Tx)
	for i, txIn := range msgTx.TxIn {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		prevHash := txIn.PreviousOutPoint.Hash
		if prevHash == (chainhash.Hash{}) {
			return 0, fmt.Errorf("transaction %v is a coinbase", hash)
		}
		prev, ok := prevTxs[prevHash]
		if !ok {
			prev, err = c.client.GetRawTransaction(&prevHash)
			if err != nil {
				return 0, fmt.Errorf("input %d: %v", i, err)
			}
			prevTxs[prevHash] = prev
		}
		prevOuts := prev.MsgTx().TxOut
		index := txIn.PreviousOutPoint.Index
		if uint64(index) >= uint64(len(prevOuts)) {
			return 0, fmt.Errorf("input %d spends missing output %v",
				i, txIn.PreviousOutPoint)
		}
		in += prevOuts[index].Value
	}
	for _, txOut := range msgTx.TxOut {
		out += txOut.Value
	}
	if in < out {
		return 0, fmt.Errorf("transaction %v spends %d but pays %d",
			hash, in, out)
	}
	log.Debugf("Fee of %v is %d satoshis", hash, in-out)
	return in - out, nil
}
