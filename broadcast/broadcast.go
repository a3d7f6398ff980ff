
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

//包broadcast将签名交易中继到一组配置的节点。
//
//重新提交相同的签名交易是无害的，因此每个节点独立尝试，
//没有去重或法定人数逻辑。
package broadcast

import (
	"errors"
	"sync"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/rpcclient"
	"github.com/btcsuite/btcd/wire"

	"github.com/btcsuite/feebump/internal/cfgutil"
	"github.com/btcsuite/feebump/rawtx"
)

//ErrNoPeers在没有配置节点时由Submit返回。
var ErrNoPeers = errors.New("no peers configured")

//Submitter是rpcclient.Client中用于中继交易的子集。
type Submitter interface {
	SendRawTransaction(tx *wire.MsgTx, allowHighFees bool) (*chainhash.Hash, error)
}

//Peer是一个命名的交易提交目标。
type Peer struct {
	Addr      string
	Submitter Submitter
}

//Outcome是向单个节点提交的结果。
type Outcome struct {
	Peer string
	Hash *chainhash.Hash
	Err  error
}

//Accepted报告节点是否接受了交易。
func (o *Outcome) Accepted() bool {
	return o.Err == nil
}

//Broadcaster将签名交易并发地提交给每个节点。
type Broadcaster struct {
	peers []Peer

//AllowHighFees传递给每个节点的sendrawtransaction。
	AllowHighFees bool
}

//New返回按给定顺序向peers提交的Broadcaster。
func New(peers []Peer) *Broadcaster {
	return &Broadcaster{peers: peers}
}

//Submit解码签名交易并将其发送到每个节点，每个节点一个goroutine。
//解码失败时在联系任何节点之前返回rawtx.Error。结果与配置的节点
//顺序相同；单个节点的失败记录在其Outcome中，而不是作为错误返回。
func (b *Broadcaster) Submit(signed []byte) ([]Outcome, error) {
	tx, err := rawtx.Deserialize(signed)
	if err != nil {
		return nil, err
	}
	if len(b.peers) == 0 {
		return nil, ErrNoPeers
	}
	msgTx, err := tx.MsgTx()
	if err != nil {
		return nil, err
	}

	outcomes := make([]Outcome, len(b.peers))
	var wg sync.WaitGroup
	wg.Add(len(b.peers))
	for i := range b.peers {
		go func(i int) {
			defer wg.Done()
			peer := &b.peers[i]
			hash, err := peer.Submitter.SendRawTransaction(msgTx,
				b.AllowHighFees)
			outcomes[i] = Outcome{Peer: peer.Addr, Hash: hash, Err: err}
		}(i)
	}
	wg.Wait()

	accepted := 0
	for i := range outcomes {
		o := &outcomes[i]
		if !o.Accepted() {
			log.Warnf("Peer %s rejected %v: %v", o.Peer, tx.Hash(), o.Err)
			continue
		}
		accepted++
		if o.Hash != nil && !o.Hash.IsEqual(tx.Hash()) {
			log.Warnf("Peer %s reported hash %v for %v", o.Peer, o.Hash,
				tx.Hash())
		}
		log.Infof("Peer %s accepted %v", o.Peer, tx.Hash())
	}
	log.Infof("Transaction %v accepted by %d of %d %s", tx.Hash(),
		accepted, len(outcomes), pickNoun(len(outcomes), "peer", "peers"))
	return outcomes, nil
}

//Shutdown关闭所有由rpcclient支持的节点连接。
func (b *Broadcaster) Shutdown() {
	for _, peer := range b.peers {
		if c, ok := peer.Submitter.(interface{ Shutdown() }); ok {
			c.Shutdown()
		}
	}
}

//LoadPeers从path读取节点地址，每行一个host[:port]。空行和
//#注释被忽略；地址使用defaultPort规范化并去重。
func LoadPeers(path, defaultPort string) ([]string, error) {
	lines, err := cfgutil.ReadLines(path)
	if err != nil {
		return nil, err
	}
	return cfgutil.NormalizeAddresses(lines, defaultPort)
}

//Dial为每个地址创建一个HTTP POST模式的rpcclient，从template复制
//凭据和TLS设置。任何客户端创建失败时，已创建的客户端被关闭。
func Dial(addrs []string, template *rpcclient.ConnConfig) ([]Peer, error) {
	peers := make([]Peer, 0, len(addrs))
	for _, addr := range addrs {
		cfg := *template
		cfg.Host = addr
		cfg.HTTPPostMode = true
		client, err := rpcclient.New(&cfg, nil)
		if err != nil {
			New(peers).Shutdown()
			return nil, err
		}
		peers = append(peers, Peer{Addr: addr, Submitter: client})
	}
	return peers, nil
}

func pickNoun(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
