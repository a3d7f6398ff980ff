
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

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"

	"github.com/btcsuite/btcutil"

	"github.com/btcsuite/feebump/broadcast"
	"github.com/btcsuite/feebump/internal/cfgutil"
	"github.com/btcsuite/feebump/internal/hashutil"
	"github.com/btcsuite/feebump/internal/prompt"
	"github.com/btcsuite/feebump/rawtx"
)

//broadcastCmd将签名交易中继到配置的节点。
type broadcastCmd struct {
	Yes           bool  `short:"y" long:"yes" description:"Broadcast without asking for confirmation"`
	AllowHighFees bool  `long:"allowhighfees" description:"Ask peers to accept transactions paying very high fees"`
	Args          txArg `positional-args:"yes" required:"yes"`
}

//peerAddrs返回节点文件中的地址，加上--rpcconnect服务器（如果有）。
func peerAddrs(cfg *config) ([]string, error) {
	var addrs []string
	exists, err := cfgutil.FileExists(cfg.NodesFile.Value)
	if err != nil {
		return nil, err
	}
	if exists {
		addrs, err = broadcast.LoadPeers(cfg.NodesFile.Value,
			activeNet.RPCClientPort)
		if err != nil {
			return nil, errContext(err, "failed to read peers file")
		}
	} else if cfg.NodesFile.ExplicitlySet() {
		return nil, fmt.Errorf("peers file `%s` not found",
			cfg.NodesFile.Value)
	}
	if cfg.RPCConnect != "" {
		addrs = append(addrs, cfg.RPCConnect)
	}
	if len(addrs) == 0 {
		return nil, errors.New("no peers: create a peers file or " +
			"set --rpcconnect")
	}
	return cfgutil.NormalizeAddresses(addrs, activeNet.RPCClientPort)
}

func (c *broadcastCmd) run(ctx context.Context, a *app) error {
	txHex, err := a.readTxHex(c.Args.Tx)
	if err != nil {
		return errContext(err, "failed to read transaction")
	}
	signed, err := hashutil.DecodeHex(txHex)
	if err != nil {
		return errContext(err, "failed to decode transaction")
	}
	tx, err := rawtx.Deserialize(signed)
	if err != nil {
		return errContext(err, "failed to decode transaction")
	}

	addrs, err := peerAddrs(a.cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Transaction %s (%d bytes, %v out) to %d %s\n",
		tx.TxID(), tx.Size(), btcutil.Amount(tx.TotalOutputAmount()),
		len(addrs), pickNoun(len(addrs), "peer", "peers"))
	if !c.Yes {
		ok, err := prompt.Bool(bufio.NewReader(a.in), a.out,
			"Broadcast now?", "no")
		if err != nil {
			return err
		}
		if !ok {
			return errors.New("broadcast cancelled")
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	connConfig, err := rpcConnConfig(a.cfg)
	if err != nil {
		return err
	}
	peers, err := broadcast.Dial(addrs, connConfig)
	if err != nil {
		return errContext(err, "failed to create RPC clients")
	}
	b := broadcast.New(peers)
	b.AllowHighFees = c.AllowHighFees
	defer b.Shutdown()

	outcomes, err := b.Submit(signed)
	if err != nil {
		return err
	}
	accepted := 0
	for _, o := range outcomes {
		if o.Accepted() {
			accepted++
			fmt.Fprintf(a.out, "  %s: accepted\n", o.Peer)
			continue
		}
		fmt.Fprintf(a.out, "  %s: %v\n", o.Peer, o.Err)
	}
	if accepted == 0 {
		return errors.New("no peer accepted the transaction")
	}
	return nil
}
