package input

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/tsinghua-fib-lab/venturesim-oss/entity"
	"github.com/tsinghua-fib-lab/venturesim-oss/utils/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gopkg.in/yaml.v2"
)

// Input 输入数据
// 功能：存储模拟所需的所有目录数据
// 说明：包含研究项目、国家档案、初始供应商、成就定义四类目录，
// 支持从MongoDB、YAML文件加载，未配置的目录使用内置默认数据
type Input struct {
	Research     []entity.ResearchProject
	Countries    []entity.CountryProfile
	Suppliers    []entity.Supplier
	Achievements []entity.Achievement
}

// Init 下载数据
// 功能：根据配置初始化并加载所有目录数据
// 参数：config-配置对象，cacheDir-缓存目录
// 返回：加载完成的输入数据指针
// 算法说明：
// 1. 缓存检查：验证缓存目录的有效性
// 2. 数据库连接：如果配置了MongoDB则建立连接
// 3. 逐目录加载：
//   - 未配置：使用内置默认目录
//   - 文件加载：从指定YAML文件加载
//   - 数据库加载：从MongoDB加载并写入缓存
//   - 缓存加载：缓存命中时跳过下载
//
// 4. 数据验证：空目录视为配置错误并panic
// 说明：这是数据加载的主入口，确保模拟所需的全部目录数据都正确加载
func Init(config config.Config, cacheDir string) (res *Input) {
	useCache := preCheckCache(cacheDir)
	if !useCache {
		cacheDir = ""
	}

	var client *mongo.Client
	if config.Input.URI != "" {
		client = mustConnect(config.Input.URI)
		defer client.Disconnect(context.Background())
	}

	res = &Input{}
	if config.Input.Research != nil {
		res.Research = mustLoad[entity.ResearchProject](client, *config.Input.Research, cacheDir)
	} else {
		res.Research = DefaultResearchCatalog()
	}
	if config.Input.Countries != nil {
		res.Countries = mustLoad[entity.CountryProfile](client, *config.Input.Countries, cacheDir)
	} else {
		res.Countries = DefaultCountryCatalog()
	}
	if config.Input.Suppliers != nil {
		res.Suppliers = mustLoad[entity.Supplier](client, *config.Input.Suppliers, cacheDir)
	} else {
		res.Suppliers = DefaultSupplierCatalog()
	}
	if config.Input.Achievements != nil {
		res.Achievements = mustLoad[entity.Achievement](client, *config.Input.Achievements, cacheDir)
	} else {
		res.Achievements = DefaultAchievementCatalog()
	}

	if len(res.Research) == 0 {
		log.Panicln("empty research catalog, please check input config")
	}
	if len(res.Countries) == 0 {
		log.Panicln("empty country catalog, please check input config")
	}
	if len(res.Suppliers) == 0 {
		log.Panicln("empty supplier catalog, please check input config")
	}
	if len(res.Achievements) == 0 {
		log.Panicln("empty achievement catalog, please check input config")
	}
	return
}

// mustConnect 连接MongoDB
// 说明：连接失败时panic
func mustConnect(uri string) *mongo.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Panicf("failed to connect to mongodb: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Panicf("failed to ping mongodb: %v", err)
	}
	return client
}

// mustLoad 必须加载数据（泛型函数）
// 功能：从YAML文件、缓存或MongoDB中加载一类目录数据
// 参数：client-MongoDB客户端，inputPath-输入路径配置，cacheDir-缓存目录
// 返回：加载的目录数据切片
// 算法说明：
// 1. 文件加载：配置了文件路径时直接读取YAML文件
// 2. 缓存加载：缓存文件存在时从缓存读取，跳过下载
// 3. 数据库加载：从MongoDB集合中读取全部文档并解码
// 4. 缓存写入：下载成功后写入YAML缓存文件
// 5. 错误处理：如果加载失败则panic
// 说明：提供统一的数据加载接口，支持缓存和数据库两种数据源
func mustLoad[T any](client *mongo.Client, inputPath config.InputPath, cacheDir string) []T {
	if inputPath.File != "" {
		return mustLoadYAMLFile[T](inputPath.File)
	}

	cachePath := ""
	if cacheDir != "" {
		cachePath = filepath.Join(cacheDir, inputPath.GetCachePath())
		if _, err := os.Stat(cachePath); err == nil {
			log.Infof("load %s.%s from cache %s", inputPath.DB, inputPath.Col, cachePath)
			return mustLoadYAMLFile[T](cachePath)
		}
	}
	if inputPath.OnlyCache {
		log.Panicf("only_cache is set but cache %s not found", inputPath.GetCachePath())
	}
	if client == nil {
		log.Panicf("no mongodb uri but %s.%s requires download", inputPath.DB, inputPath.Col)
	}

	log.Infof("start fetching from %s.%s", inputPath.DB, inputPath.Col)
	coll := client.Database(inputPath.GetDb()).Collection(inputPath.GetColl())
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	cursor, err := coll.Find(ctx, bson.D{})
	if err != nil {
		log.Panicf("failed to query %s.%s: %v", inputPath.DB, inputPath.Col, err)
	}
	var res []T
	if err := cursor.All(ctx, &res); err != nil {
		log.Panicf("failed to decode %s.%s: %v", inputPath.DB, inputPath.Col, err)
	}
	log.Infof("finish fetching from %s.%s", inputPath.DB, inputPath.Col)

	if cachePath != "" {
		if err := writeYAMLFile(cachePath, res); err != nil {
			log.Errorf("failed to write cache %s: %v", cachePath, err)
		}
	}
	return res
}

// mustLoadYAMLFile 从YAML文件加载目录数据
// 说明：加载失败时panic
func mustLoadYAMLFile[T any](path string) []T {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Panicf("failed to read %s: %v", path, err)
	}
	var res []T
	if err := yaml.UnmarshalStrict(data, &res); err != nil {
		log.Panicf("failed to parse %s: %v", path, err)
	}
	return res
}

// writeYAMLFile 将目录数据写入YAML缓存文件
func writeYAMLFile[T any](path string, data []T) error {
	out, err := yaml.Marshal(data)
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0o644)
}
