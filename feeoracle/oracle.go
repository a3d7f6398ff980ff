
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

//包feeoracle提供费率建议和已确认交易费用的外部来源：一个HTTP
//费用服务客户端和一个由btcd或bitcoind JSON-RPC连接支持的客户端。
//
//费用在这里被消费，而不是计算。这两个客户端都不缓存结果。
package feeoracle

import (
	"context"
	"errors"
)

//RecommendedFees是以聪/字节为单位的推荐费率。
type RecommendedFees struct {
	FastestFee  int64 `json:"fastestFee"`
	HalfHourFee int64 `json:"halfHourFee"`
	HourFee     int64 `json:"hourFee"`
}

//FeeEstimator返回当前推荐费率。
type FeeEstimator interface {
	RecommendedFees(ctx context.Context) (*RecommendedFees, error)
}

//FeeLookup返回已知交易支付的费用（聪）。
type FeeLookup interface {
	TransactionFee(ctx context.Context, txid string) (int64, error)
}

//Oracle同时提供两种查询。
type Oracle interface {
	FeeEstimator
	FeeLookup
}

//ErrNoFeeRate在来源没有返回可用的正费率时返回。
var ErrNoFeeRate = errors.New("fee source returned no usable fee rate")

//validate拒绝任何非正费率。
func (f *RecommendedFees) validate() error {
	if f.FastestFee <= 0 || f.HalfHourFee < 0 || f.HourFee < 0 {
		return ErrNoFeeRate
	}
	return nil
}
