
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

package netparams

import (
	"errors"

	"github.com/btcsuite/btcd/chaincfg"
)

//Params将链参数与该网络上节点RPC端口和交易查询端点组合在一起。
type Params struct {
	*chaincfg.Params

//RPCClientPort是节点JSON-RPC服务器的默认端口。
	RPCClientPort string

//TxURL是默认的交易费用查询端点，%s是交易ID。
	TxURL string
}

//MainNetParams包含主网络（wire.MainNet）的参数。
var MainNetParams = Params{
	Params:        &chaincfg.MainNetParams,
	RPCClientPort: "8334",
	TxURL:         "https://api.blockcypher.com/v1/btc/main/txs/%s",
}

//TestNet3Params包含测试网络版本3（wire.TestNet3）的参数。
var TestNet3Params = Params{
	Params:        &chaincfg.TestNet3Params,
	RPCClientPort: "18334",
	TxURL:         "https://api.blockcypher.com/v1/btc/test3/txs/%s",
}

//SimNetParams包含模拟测试网络（wire.SimNet）的参数。
//没有公共查询服务，因此费用必须来自节点或手动提供。
var SimNetParams = Params{
	Params:        &chaincfg.SimNetParams,
	RPCClientPort: "18556",
}

//ErrMultipleNetworks在同时选择多个网络时返回。
var ErrMultipleNetworks = errors.New("multiple bitcoin networks may not " +
	"be used simultaneously")

//Select返回命令行标志选择的网络，默认为主网络。
func Select(testNet3, simNet bool) (*Params, error) {
	switch {
	case testNet3 && simNet:
		return nil, ErrMultipleNetworks
	case testNet3:
		return &TestNet3Params, nil
	case simNet:
		return &SimNetParams, nil
	}
	return &MainNetParams, nil
}
